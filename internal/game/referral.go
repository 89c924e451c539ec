package game

import (
	"context"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// RedeemReferral credits the referee bonus for entering another
// player's code. A save can redeem at most one code, never its own, and
// the code must meet the minimum length.
func (s *service) RedeemReferral(ctx context.Context, code string) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	return s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		if st.ReferredBy != nil {
			return nil, domain.ErrAlreadyReferred
		}
		if code == st.ReferralCode {
			return nil, domain.ErrSelfReferral
		}
		if len(code) < domain.MinReferralCodeLength {
			return nil, domain.ErrInvalidReferral
		}

		st.Balance += domain.RefereeBonus
		st.ReferredBy = &code

		events := []event.Event{event.NewReferralRedeemedEvent(code, domain.RefereeBonus)}
		events = append(events, s.evaluateAchievements(st)...)

		log.Info(LogMsgReferralRedeemed, "code", code, "bonus", domain.RefereeBonus)
		return events, nil
	})
}

// SimulateReferralJoin credits the referrer reward as if a friend had
// joined through this save's code
func (s *service) SimulateReferralJoin(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	return s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		st.Balance += domain.ReferralReward
		st.ReferralEarnings += domain.ReferralReward

		events := []event.Event{event.NewReferralJoinedEvent(domain.ReferralReward, st.ReferralEarnings)}
		events = append(events, s.evaluateAchievements(st)...)

		log.Info(LogMsgReferralJoined, "reward", domain.ReferralReward, "earnings", st.ReferralEarnings)
		return events, nil
	})
}
