// Package game owns the player save state and implements every action
// that can change it. All mutations are serialized through a single
// service and applied all-or-nothing: a rejected action or a failed
// snapshot write leaves the state untouched.
package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/catalog"
	"github.com/steppeworks/CryptoAul_Go/internal/daily"
	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// Store persists state snapshots. The service writes through on every
// successful mutation.
type Store interface {
	Save(ctx context.Context, state *domain.GameState) error
}

// CollectResult reports the outcome of an income collection
type CollectResult struct {
	Amount float64           `json:"amount"`
	State  *domain.GameState `json:"state"`
}

// Service defines the interface for game state operations
type Service interface {
	State(ctx context.Context) *domain.GameState

	BuyAsset(ctx context.Context, defID string) (*domain.GameState, error)
	BuyListing(ctx context.Context, listingID string) (*domain.GameState, error)
	CollectIncome(ctx context.Context, instanceID string) (*CollectResult, error)
	ClaimQuest(ctx context.Context, questID string) (*domain.GameState, error)
	Deposit(ctx context.Context) (*domain.GameState, error)
	RedeemReferral(ctx context.Context, code string) (*domain.GameState, error)
	SimulateReferralJoin(ctx context.Context) (*domain.GameState, error)

	// RefreshDailyQuests regenerates the quest batch if it has gone
	// stale. Called on startup and by the background worker.
	RefreshDailyQuests(ctx context.Context) (bool, error)
}

type service struct {
	cat       *catalog.Catalog
	store     Store
	publisher event.Bus

	now   func() time.Time
	rnd   *rand.Rand
	newID func() string

	mu    sync.Mutex
	state *domain.GameState
}

// NewService creates a game service around a loaded (or fresh) save.
// The initial state is normalized: missing collections are backfilled
// and every placed asset is re-zoned to the current layout rules.
func NewService(cat *catalog.Catalog, store Store, publisher event.Bus, initial *domain.GameState) Service {
	s := &service{
		cat:       cat,
		store:     store,
		publisher: publisher,
		now:       time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
		newID:     newInstanceID,
		state:     initial.Clone(),
	}
	s.normalize(s.state)

	// Persist immediately so the stored snapshot matches what the
	// service is serving. Startup proceeds even if this write fails;
	// the next accepted action will retry.
	if err := store.Save(context.Background(), s.state); err != nil {
		logger.Warn(LogMsgSnapshotSaveFailed, "error", err)
	}
	return s
}

// State returns a copy of the current save
func (s *service) State(_ context.Context) *domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// normalize backfills collections a partial save may lack and reapplies
// the zoning policy to the whole inventory
func (s *service) normalize(st *domain.GameState) {
	if st.Inventory == nil {
		st.Inventory = []domain.PlacedAsset{}
	}
	if st.Quests == nil {
		st.Quests = []domain.Quest{}
	}
	if st.UnlockedAchievements == nil {
		st.UnlockedAchievements = []string{}
	}
	if st.ReferralCode == "" {
		st.ReferralCode = domain.NewReferralCode()
	}

	for i := range st.Inventory {
		def, ok := s.cat.Asset(st.Inventory[i].DefID)
		if !ok {
			continue
		}
		x, y := spawnPosition(def, s.rnd)
		st.Inventory[i].X = x
		st.Inventory[i].Y = y
	}
}

// mutate applies fn to a copy of the state, persists the copy, then
// swaps it in and publishes the emitted events. Any error from fn or
// from the store leaves the current state untouched.
func (s *service) mutate(ctx context.Context, fn func(st *domain.GameState) ([]event.Event, error)) (*domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	events, err := fn(next)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, next); err != nil {
		logger.FromContext(ctx).Error(LogMsgSnapshotSaveFailed, "error", err)
		return nil, err
	}
	s.state = next

	for _, ev := range events {
		_ = s.publisher.Publish(ctx, ev)
	}

	return next.Clone(), nil
}

// RefreshDailyQuests regenerates the daily quest batch when stale.
// Progress on unclaimed quests is discarded with the old batch.
func (s *service) RefreshDailyQuests(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	stale := daily.IsStale(s.state.LastDailyReset, len(s.state.Quests), s.now())
	s.mu.Unlock()
	if !stale {
		return false, nil
	}

	refreshed := false
	_, err := s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		// Re-check under the lock; another caller may have reset already
		now := s.now()
		if !daily.IsStale(st.LastDailyReset, len(st.Quests), now) {
			return nil, nil
		}

		st.Quests = daily.Generate(s.cat.QuestTemplates(), s.rnd)
		st.LastDailyReset = now.UnixMilli()
		refreshed = true

		log.Info(LogMsgDailyQuestsReset, "quests", len(st.Quests))
		return []event.Event{event.NewDailyQuestsResetEvent(now, len(st.Quests))}, nil
	})
	if err != nil {
		return false, err
	}
	return refreshed, nil
}
