package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

func sampleState() *domain.GameState {
	referrer := "STEPPE-XY99"
	return &domain.GameState{
		Balance: 321.5,
		Inventory: []domain.PlacedAsset{
			{InstanceID: "i1", DefID: "cow", X: 50, Y: 80, LastCollectedAt: 1700000000000},
		},
		Stats:                domain.GameStats{TotalCollected: 12.5, TotalTaps: 40, TotalAssetsBought: 3},
		Quests:               []domain.Quest{{ID: "q1", Type: domain.QuestTypeTap, Target: 5, Current: 2, Reward: 5}},
		UnlockedAchievements: []string{"first_steps"},
		LastDailyReset:       1700000000000,
		ReferralCode:         "STEPPE-AB12",
		ReferredBy:           &referrer,
		ReferralEarnings:     100,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "save.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	want := sampleState()
	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreLoadMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	require.NoError(t, err)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "save.json"))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(context.Background(), sampleState()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.Contains(entries[0].Name(), ".tmp-"))
}

func TestFileStorePing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestDecodeSnapshotBackfillsPartialSave(t *testing.T) {
	// Save written before stats/quests/referrals existed
	state, err := decodeSnapshot([]byte(`{"balance": 42, "inventory": [{"instanceId":"i1","defId":"sheep"}]}`))
	require.NoError(t, err)

	assert.InDelta(t, 42, state.Balance, 1e-9)
	require.Len(t, state.Inventory, 1)
	assert.NotNil(t, state.Quests)
	assert.NotNil(t, state.UnlockedAchievements)
	assert.Zero(t, state.Stats)
	assert.Zero(t, state.LastDailyReset)
	assert.Nil(t, state.ReferredBy)
	assert.Zero(t, state.ReferralEarnings)
	assert.NotEmpty(t, state.ReferralCode)
}

func TestDecodeSnapshotEmptyObjectGetsDefaults(t *testing.T) {
	state, err := decodeSnapshot([]byte(`{}`))
	require.NoError(t, err)

	assert.InDelta(t, domain.InitialBalance, state.Balance, 1e-9)
	assert.Empty(t, state.Inventory)
	assert.NotEmpty(t, state.ReferralCode)
}

func TestDecodeSnapshotPreservesZeroBalance(t *testing.T) {
	// A genuine zero balance must not be mistaken for a missing field
	state, err := decodeSnapshot([]byte(`{"balance": 0}`))
	require.NoError(t, err)
	assert.Zero(t, state.Balance)
}
