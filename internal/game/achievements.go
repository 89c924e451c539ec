package game

import (
	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
)

// Achievement thresholds
const (
	noviceHerderLivestock = 3
	wealthyBalance        = 500.0
	builderBuildings      = 1
	diligentTaps          = 50
)

// unlockPredicates maps achievement ids to their unlock conditions.
// Unknown ids in the catalog simply never unlock.
var unlockPredicates = map[string]func(s *service, st *domain.GameState) bool{
	"first_steps": func(_ *service, st *domain.GameState) bool {
		return st.Stats.TotalTaps >= 1
	},
	"novice_herder": func(s *service, st *domain.GameState) bool {
		return s.countByCategory(st, domain.CategoryLivestock) >= noviceHerderLivestock
	},
	"wealthy": func(_ *service, st *domain.GameState) bool {
		return st.Balance >= wealthyBalance
	},
	"builder": func(s *service, st *domain.GameState) bool {
		return s.countByCategory(st, domain.CategoryBuilding) >= builderBuildings
	},
	"diligent": func(_ *service, st *domain.GameState) bool {
		return st.Stats.TotalTaps >= diligentTaps
	},
}

func (s *service) countByCategory(st *domain.GameState, category domain.AssetCategory) int {
	count := 0
	for _, asset := range st.Inventory {
		if def, ok := s.cat.Asset(asset.DefID); ok && def.Category == category {
			count++
		}
	}
	return count
}

// evaluateAchievements checks every locked achievement against the
// state and unlocks those whose condition now holds. Unlocks are
// permanent. Returns one event per newly unlocked achievement.
func (s *service) evaluateAchievements(st *domain.GameState) []event.Event {
	var events []event.Event
	for _, def := range s.cat.Achievements() {
		if st.HasAchievement(def.ID) {
			continue
		}
		predicate, ok := unlockPredicates[def.ID]
		if !ok || !predicate(s, st) {
			continue
		}
		st.UnlockedAchievements = append(st.UnlockedAchievements, def.ID)
		events = append(events, event.NewAchievementUnlockedEvent(def.ID, def.Title))
	}
	return events
}
