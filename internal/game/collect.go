package game

import (
	"context"
	"fmt"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// CollectIncome harvests one asset instance. Eligibility and payout are
// derived here from the instance and the catalog, never taken from the
// caller: the asset must have completed a full income interval since its
// last collection, and the payout is price times income rate.
func (s *service) CollectIncome(ctx context.Context, instanceID string) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	var amount float64
	state, err := s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		asset, ok := st.FindAsset(instanceID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrAssetInstanceNotFound, instanceID)
		}
		def, ok := s.cat.Asset(asset.DefID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, asset.DefID)
		}

		now := s.now()
		elapsed := now.Sub(time.UnixMilli(asset.LastCollectedAt))
		if elapsed < def.IncomeInterval {
			return nil, fmt.Errorf("%w: %s ready in %s", domain.ErrOnCooldown, instanceID, def.IncomeInterval-elapsed)
		}

		amount = def.IncomePerCollection()
		asset.LastCollectedAt = now.UnixMilli()
		st.Balance += amount
		st.Stats.TotalCollected += amount
		st.Stats.TotalTaps++

		events := []event.Event{event.NewIncomeCollectedEvent(asset.InstanceID, def.ID, amount)}
		events = append(events, advanceQuests(st, domain.QuestTypeCollect, amount)...)
		events = append(events, advanceQuests(st, domain.QuestTypeTap, 1)...)
		events = append(events, s.evaluateAchievements(st)...)

		log.Info(LogMsgIncomeCollected, "instance_id", instanceID, "def_id", def.ID, "amount", amount)
		return events, nil
	})
	if err != nil {
		return nil, err
	}

	return &CollectResult{Amount: amount, State: state}, nil
}
