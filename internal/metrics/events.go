package metrics

import (
	"context"
	"fmt"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes the collector to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		domain.EventTypeAssetBought,
		domain.EventTypeIncomeCollected,
		domain.EventTypeQuestCompleted,
		domain.EventTypeQuestClaimed,
		domain.EventTypeAchievementUnlocked,
		domain.EventTypeDailyQuestsReset,
		domain.EventTypeDepositCompleted,
		domain.EventTypeReferralRedeemed,
		domain.EventTypeReferralJoined,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent records metrics for a published event. Payloads are
// decoded through event.DecodePayload so events replayed from
// serialized sources count the same as in-process ones.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch string(evt.Type) {
	case domain.EventTypeAssetBought:
		p, err := event.DecodePayload[domain.AssetBoughtPayload](evt.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		AssetsBought.WithLabelValues(p.DefID).Inc()
		AmountSpent.Add(p.Price)

	case domain.EventTypeIncomeCollected:
		p, err := event.DecodePayload[domain.IncomeCollectedPayload](evt.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		IncomeCollections.WithLabelValues(p.DefID).Inc()
		IncomeAmount.Add(p.Amount)

	case domain.EventTypeQuestCompleted:
		p, err := event.DecodePayload[domain.QuestCompletedPayload](evt.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		QuestsCompleted.WithLabelValues(p.QuestType).Inc()

	case domain.EventTypeQuestClaimed:
		p, err := event.DecodePayload[domain.QuestClaimedPayload](evt.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		QuestsClaimed.Inc()
		QuestRewardsPaid.Add(p.Reward)

	case domain.EventTypeAchievementUnlocked:
		p, err := event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()

	case domain.EventTypeDailyQuestsReset:
		DailyResets.Inc()

	case domain.EventTypeDepositCompleted:
		Deposits.Inc()

	case domain.EventTypeReferralRedeemed:
		ReferralsRedeemed.Inc()

	case domain.EventTypeReferralJoined:
		ReferralJoins.Inc()

	default:
		log.Debug(LogMsgUnknownEventType, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
