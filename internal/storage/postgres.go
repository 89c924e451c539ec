package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// NewPool creates a PostgreSQL connection pool and verifies connectivity
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	config.MaxConns = DefaultMaxConnections
	config.MinConns = DefaultMinConnections
	config.MaxConnIdleTime, _ = time.ParseDuration(DefaultMaxConnIdleTime)
	config.MaxConnLifetime, _ = time.ParseDuration(DefaultMaxConnLifetime)

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgConnectedToDatabase)
	return pool, nil
}

// PostgresStore keeps the snapshot in a single jsonb row keyed by the
// save key. Concurrent installs can share one database by using
// distinct keys.
type PostgresStore struct {
	pool    *pgxpool.Pool
	saveKey string
}

// NewPostgresStore creates a Postgres-backed snapshot store
func NewPostgresStore(pool *pgxpool.Pool, saveKey string) *PostgresStore {
	return &PostgresStore{pool: pool, saveKey: saveKey}
}

// Save upserts the snapshot row
func (p *PostgresStore) Save(ctx context.Context, state *domain.GameState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO game_saves (save_key, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (save_key)
		DO UPDATE SET state = EXCLUDED.state, updated_at = now()`

	if _, err := p.pool.Exec(ctx, query, p.saveKey, data); err != nil {
		return fmt.Errorf(ErrMsgUpsertSnapshotFailed, err)
	}
	return nil
}

// Load reads the snapshot row, returning (nil, nil) when absent
func (p *PostgresStore) Load(ctx context.Context) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	var data []byte
	query := `SELECT state FROM game_saves WHERE save_key = $1`
	err := p.pool.QueryRow(ctx, query, p.saveKey).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Info(LogMsgNoSnapshotFound, "save_key", p.saveKey)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySnapshotFailed, err)
	}

	state, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSnapshotLoaded, "save_key", p.saveKey, "assets", len(state.Inventory))
	return state, nil
}

// Ping verifies database connectivity
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
