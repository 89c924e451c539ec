package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/steppeworks/CryptoAul_Go/internal/config"
	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/storage"
)

// InitializeStorage selects and constructs the snapshot backend. The postgres
// backend is wrapped in an LRU read cache; the returned pool is nil for the
// file backend.
func InitializeStorage(ctx context.Context, cfg *config.Config) (storage.Backend, *pgxpool.Pool, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		pool, err := storage.NewPool(ctx, cfg.GetDBConnString())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres pool: %w", err)
		}

		store := storage.NewCachedStore(
			storage.NewPostgresStore(pool, cfg.SaveKey),
			cfg.SaveKey,
			SnapshotCacheSize,
			SnapshotCacheTTL,
		)
		slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend, "save_key", cfg.SaveKey)
		return store, pool, nil

	default:
		store, err := storage.NewFileStore(cfg.SavePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend, "save_path", cfg.SavePath)
		return store, nil, nil
	}
}

// LoadInitialState reads the persisted save, falling back to a fresh game
// state when no save exists or the document cannot be decoded. A save that
// fails to load must never prevent startup.
func LoadInitialState(ctx context.Context, store storage.SnapshotStore) *domain.GameState {
	state, err := store.Load(ctx)
	if err != nil {
		slog.Warn(LogMsgSaveUnreadable, "error", err)
		return domain.NewInitialState()
	}
	if state == nil {
		slog.Info(LogMsgNewSaveCreated)
		return domain.NewInitialState()
	}

	slog.Info(LogMsgSaveLoaded,
		"balance", state.Balance,
		"inventory_size", len(state.Inventory),
		"total_taps", state.Stats.TotalTaps)
	return state
}
