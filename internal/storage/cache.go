package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cached snapshot
// shape. Increment when the snapshot structure changes so stale entries
// invalidate themselves.
const CacheSchemaVersion = "2.0"

// cachedSnapshot wraps a state with version metadata for invalidation
type cachedSnapshot struct {
	Version  string
	State    *domain.GameState
	CachedAt time.Time
}

// CachedStore is a write-through caching wrapper around a SnapshotStore.
// Loads are served from an expiring LRU when possible; every save
// refreshes the cached entry.
type CachedStore struct {
	inner SnapshotStore
	key   string
	lru   *expirable.LRU[string, *cachedSnapshot]
}

// NewCachedStore wraps a store with an expiring snapshot cache
func NewCachedStore(inner SnapshotStore, saveKey string, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		key:   saveKey,
		lru:   expirable.NewLRU[string, *cachedSnapshot](size, nil, ttl),
	}
}

// Save writes through to the backend and refreshes the cache entry
func (c *CachedStore) Save(ctx context.Context, state *domain.GameState) error {
	if err := c.inner.Save(ctx, state); err != nil {
		// A failed write must not leave a newer state in the cache
		c.lru.Remove(c.key)
		return err
	}
	c.lru.Add(c.key, &cachedSnapshot{
		Version:  CacheSchemaVersion,
		State:    state.Clone(),
		CachedAt: time.Now(),
	})
	return nil
}

// Load returns the cached snapshot when fresh, falling back to the
// backend and populating the cache on a miss
func (c *CachedStore) Load(ctx context.Context) (*domain.GameState, error) {
	if entry, found := c.lru.Get(c.key); found {
		if entry.Version == CacheSchemaVersion {
			return entry.State.Clone(), nil
		}
		c.lru.Remove(c.key)
	}

	state, err := c.inner.Load(ctx)
	if err != nil || state == nil {
		return state, err
	}

	c.lru.Add(c.key, &cachedSnapshot{
		Version:  CacheSchemaVersion,
		State:    state.Clone(),
		CachedAt: time.Now(),
	})
	return state, nil
}

// Ping delegates to the backend when it supports connectivity checks
func (c *CachedStore) Ping(ctx context.Context) error {
	if p, ok := c.inner.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
