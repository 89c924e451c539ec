package game

import (
	"context"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// Deposit credits the fixed simulated deposit amount
func (s *service) Deposit(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	return s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		st.Balance += domain.DepositAmount

		events := []event.Event{event.NewDepositCompletedEvent(domain.DepositAmount, st.Balance)}
		events = append(events, s.evaluateAchievements(st)...)

		log.Info(LogMsgDepositCompleted, "amount", domain.DepositAmount, "balance", st.Balance)
		return events, nil
	})
}
