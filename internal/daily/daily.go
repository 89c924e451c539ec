// Package daily implements the daily quest cycle: deciding when the
// current quest batch has gone stale and drawing a fresh batch from the
// template pool.
package daily

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// StalenessWindow is the hard cap on a quest batch's lifetime. A batch
// also goes stale when the calendar day rolls over, whichever happens
// first.
const StalenessWindow = 24 * time.Hour

// IsStale reports whether the quest batch generated at lastReset (epoch
// milliseconds) needs regeneration at now. A zero lastReset or an empty
// batch is always stale.
func IsStale(lastReset int64, questCount int, now time.Time) bool {
	if questCount == 0 || lastReset == 0 {
		return true
	}

	last := time.UnixMilli(lastReset)
	if last.Day() != now.Day() || last.Month() != now.Month() {
		return true
	}

	return now.Sub(last) > StalenessWindow
}

// Generate draws a fresh quest batch from the template pool. The pool is
// shuffled and the first domain.DailyQuestCount templates become quests
// with zero progress; a pool smaller than the batch size yields the
// whole pool.
func Generate(pool []domain.QuestTemplate, rnd *rand.Rand) []domain.Quest {
	shuffled := make([]domain.QuestTemplate, len(pool))
	copy(shuffled, pool)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := domain.DailyQuestCount
	if len(shuffled) < n {
		n = len(shuffled)
	}

	quests := make([]domain.Quest, 0, n)
	for _, tpl := range shuffled[:n] {
		quests = append(quests, domain.Quest{
			ID:          uuid.NewString(),
			Description: tpl.Description,
			Type:        tpl.Type,
			Target:      tpl.Target,
			Reward:      tpl.Reward,
		})
	}
	return quests
}
