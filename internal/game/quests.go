package game

import (
	"context"
	"fmt"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// advanceQuests adds progress to every unclaimed quest of the given
// type, clamping at the target. Returns a completion event for each
// quest that just crossed its target.
func advanceQuests(st *domain.GameState, questType domain.QuestType, amount float64) []event.Event {
	var events []event.Event
	for i := range st.Quests {
		q := &st.Quests[i]
		if q.Type != questType || q.IsClaimed || q.IsComplete() {
			continue
		}

		q.Current += amount
		if q.Current > q.Target {
			q.Current = q.Target
		}
		if q.IsComplete() {
			events = append(events, event.NewQuestCompletedEvent(q.ID, q.Type))
		}
	}
	return events
}

// ClaimQuest pays out a completed, unclaimed quest. Claiming is
// one-way; the quest stays in the batch marked claimed.
func (s *service) ClaimQuest(ctx context.Context, questID string) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	return s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		quest, ok := st.FindQuest(questID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, questID)
		}
		if quest.IsClaimed {
			return nil, domain.ErrQuestAlreadyClaimed
		}
		if !quest.IsComplete() {
			return nil, domain.ErrQuestNotComplete
		}

		quest.IsClaimed = true
		st.Balance += quest.Reward

		events := []event.Event{event.NewQuestClaimedEvent(quest.ID, quest.Reward)}
		events = append(events, s.evaluateAchievements(st)...)

		log.Info(LogMsgQuestClaimed, "quest_id", quest.ID, "reward", quest.Reward)
		return events, nil
	})
}
