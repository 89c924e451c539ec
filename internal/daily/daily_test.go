package daily

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

func TestIsStale(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastReset  time.Time
		questCount int
		want       bool
	}{
		{"same day with quests", now.Add(-2 * time.Hour), 3, false},
		{"previous day", now.Add(-24 * time.Hour), 3, true},
		{"same day number different month", now.AddDate(0, -1, 0), 3, true},
		{"over 24h but same day-of-month boundary", now.Add(-25 * time.Hour), 3, true},
		{"no quests", now.Add(-time.Hour), 0, true},
		{"moments ago", now.Add(-time.Second), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsStale(tt.lastReset.UnixMilli(), tt.questCount, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsStaleZeroReset(t *testing.T) {
	assert.True(t, IsStale(0, 3, time.Now()))
}

func testPool() []domain.QuestTemplate {
	return []domain.QuestTemplate{
		{Type: domain.QuestTypeCollect, Description: "Collect 10 AMANAT", Target: 10, Reward: 5},
		{Type: domain.QuestTypeCollect, Description: "Collect 50 AMANAT", Target: 50, Reward: 20},
		{Type: domain.QuestTypeTap, Description: "Harvest 5 times", Target: 5, Reward: 5},
		{Type: domain.QuestTypeTap, Description: "Harvest 20 times", Target: 20, Reward: 15},
		{Type: domain.QuestTypeBuy, Description: "Buy 1 new asset", Target: 1, Reward: 10},
		{Type: domain.QuestTypeBuy, Description: "Buy 3 new assets", Target: 3, Reward: 25},
	}
}

func TestGenerateDrawsBatchWithoutDuplicates(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	quests := Generate(testPool(), rnd)

	require.Len(t, quests, domain.DailyQuestCount)

	seenDesc := make(map[string]bool)
	seenID := make(map[string]bool)
	for _, q := range quests {
		assert.False(t, seenDesc[q.Description], "template drawn twice: %s", q.Description)
		seenDesc[q.Description] = true
		assert.False(t, seenID[q.ID])
		seenID[q.ID] = true

		assert.Zero(t, q.Current)
		assert.False(t, q.IsClaimed)
		assert.NotEmpty(t, q.ID)
	}
}

func TestGenerateSmallPool(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	pool := testPool()[:2]

	quests := Generate(pool, rnd)
	assert.Len(t, quests, 2)
}

func TestGenerateEmptyPool(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	assert.Empty(t, Generate(nil, rnd))
}

func TestGenerateDoesNotMutatePool(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	pool := testPool()
	original := make([]domain.QuestTemplate, len(pool))
	copy(original, pool)

	Generate(pool, rnd)
	assert.Equal(t, original, pool)
}
