package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Type-safe event constructors

// NewAssetBoughtEvent creates a new asset purchase event
func NewAssetBoughtEvent(instanceID, defID string, category domain.AssetCategory, price float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeAssetBought),
		Payload: domain.AssetBoughtPayload{
			InstanceID: instanceID,
			DefID:      defID,
			Category:   string(category),
			Price:      price,
			Timestamp:  time.Now().UnixMilli(),
		},
		Metadata: nil,
	}
}

// NewIncomeCollectedEvent creates a new income collection event
func NewIncomeCollectedEvent(instanceID, defID string, amount float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeIncomeCollected),
		Payload: domain.IncomeCollectedPayload{
			InstanceID: instanceID,
			DefID:      defID,
			Amount:     amount,
			Timestamp:  time.Now().UnixMilli(),
		},
		Metadata: nil,
	}
}

// NewQuestCompletedEvent creates a new quest completion event
func NewQuestCompletedEvent(questID string, questType domain.QuestType) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeQuestCompleted),
		Payload: domain.QuestCompletedPayload{
			QuestID:   questID,
			QuestType: string(questType),
		},
		Metadata: nil,
	}
}

// NewQuestClaimedEvent creates a new quest claim event
func NewQuestClaimedEvent(questID string, reward float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeQuestClaimed),
		Payload: domain.QuestClaimedPayload{
			QuestID: questID,
			Reward:  reward,
		},
		Metadata: nil,
	}
}

// NewAchievementUnlockedEvent creates a new achievement unlock event.
// Subscribers treat this as the cue for the celebration sound.
func NewAchievementUnlockedEvent(achievementID, title string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeAchievementUnlocked),
		Payload: domain.AchievementUnlockedPayload{
			AchievementID: achievementID,
			Title:         title,
		},
		Metadata: nil,
	}
}

// NewDailyQuestsResetEvent creates a new daily reset event
func NewDailyQuestsResetEvent(resetTime time.Time, generated int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeDailyQuestsReset),
		Payload: domain.DailyQuestsResetPayload{
			ResetTime:       resetTime.UnixMilli(),
			QuestsGenerated: generated,
		},
		Metadata: nil,
	}
}

// NewDepositCompletedEvent creates a new deposit event
func NewDepositCompletedEvent(amount, newBalance float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeDepositCompleted),
		Payload: domain.DepositCompletedPayload{
			Amount:     amount,
			NewBalance: newBalance,
		},
		Metadata: nil,
	}
}

// NewReferralRedeemedEvent creates a new referral redemption event
func NewReferralRedeemedEvent(code string, bonus float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeReferralRedeemed),
		Payload: domain.ReferralRedeemedPayload{
			Code:  code,
			Bonus: bonus,
		},
		Metadata: nil,
	}
}

// NewReferralJoinedEvent creates a new simulated referral join event
func NewReferralJoinedEvent(reward, totalEarnings float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeReferralJoined),
		Payload: domain.ReferralJoinedPayload{
			Reward:        reward,
			TotalEarnings: totalEarnings,
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously; the publisher wrapper handles retries.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrFmtHandlerFailures, len(errs), len(handlers), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
