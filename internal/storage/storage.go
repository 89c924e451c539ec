// Package storage persists the game save as a single JSON snapshot.
// Two backends are provided: an atomic-write file store and a
// single-row Postgres store, plus an LRU caching wrapper.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// SnapshotStore is the persistence contract the game service writes
// through. Load returns (nil, nil) when no save exists yet.
type SnapshotStore interface {
	Save(ctx context.Context, state *domain.GameState) error
	Load(ctx context.Context) (*domain.GameState, error)
}

// Pinger is implemented by backends that can report connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend is a snapshot store that can also report its health. All
// shipped stores satisfy it; readiness checks go through Ping.
type Backend interface {
	SnapshotStore
	Pinger
}

// snapshotDoc is the tolerant decode shape for saved snapshots. Fields
// a partial or older save may lack are pointers so they can be told
// apart from genuine zero values and backfilled with defaults.
type snapshotDoc struct {
	Balance              *float64             `json:"balance"`
	Inventory            []domain.PlacedAsset `json:"inventory"`
	Stats                *domain.GameStats    `json:"stats"`
	Quests               []domain.Quest       `json:"quests"`
	UnlockedAchievements []string             `json:"unlockedAchievements"`
	LastDailyReset       *int64               `json:"lastDailyReset"`
	ReferralCode         string               `json:"referralCode"`
	ReferredBy           *string              `json:"referredBy"`
	ReferralEarnings     *float64             `json:"referralEarnings"`
}

// encodeSnapshot serializes a state for persistence
func encodeSnapshot(state *domain.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeSnapshotFailed, err)
	}
	return data, nil
}

// decodeSnapshot parses a saved snapshot, backfilling anything a
// partial save is missing with fresh-save defaults
func decodeSnapshot(data []byte) (*domain.GameState, error) {
	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeSnapshotFailed, err)
	}

	state := &domain.GameState{
		Balance:              domain.InitialBalance,
		Inventory:            []domain.PlacedAsset{},
		Quests:               []domain.Quest{},
		UnlockedAchievements: []string{},
		ReferralCode:         doc.ReferralCode,
		ReferredBy:           doc.ReferredBy,
	}

	if doc.Balance != nil {
		state.Balance = *doc.Balance
	}
	if doc.Inventory != nil {
		state.Inventory = doc.Inventory
	}
	if doc.Stats != nil {
		state.Stats = *doc.Stats
	}
	if doc.Quests != nil {
		state.Quests = doc.Quests
	}
	if doc.UnlockedAchievements != nil {
		state.UnlockedAchievements = doc.UnlockedAchievements
	}
	if doc.LastDailyReset != nil {
		state.LastDailyReset = *doc.LastDailyReset
	}
	if doc.ReferralEarnings != nil {
		state.ReferralEarnings = *doc.ReferralEarnings
	}
	if state.ReferralCode == "" {
		state.ReferralCode = domain.NewReferralCode()
	}

	return state, nil
}
