// Package cache provides the short-lived result cache used by the
// public catalog.  Each rendering request re-reads the in-stock list
// through GetOrRefresh: within the TTL window the last computed list is
// served as-is, and a stale read inside that window is an accepted
// tradeoff rather than a bug.  The abstraction is explicit and
// injectable so tests can supply a fake clock and loader instead of
// relying on process-wide state.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/catalog"
)

// Loader produces a fresh in-stock list when the cache misses or the
// entry has expired.
type Loader func(ctx context.Context) ([]catalog.Enriched, error)

// Store is the get-or-refresh contract both implementations satisfy.
type Store interface {
	// GetOrRefresh returns the cached list for key when it is still
	// within ttl, otherwise it invokes loader and caches the result.
	// Loader errors are returned untouched and nothing is cached.
	GetOrRefresh(ctx context.Context, key string, ttl time.Duration, loader Loader) ([]catalog.Enriched, error)
}

// New picks the backing store: Redis when a client is available,
// otherwise an in-process memory store.  A nil Redis client is the
// normal degraded mode when the server starts without Redis.
func New(rdb *redis.Client) Store {
	if rdb == nil {
		return NewMemory(time.Now)
	}
	return &Redis{rdb: rdb}
}

type memoryEntry struct {
	list      []catalog.Enriched
	expiresAt time.Time
}

// Memory caches entries in process memory.  The clock is injected so
// tests can advance time without sleeping.
type Memory struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemory builds a Memory store around the given clock.
func NewMemory(now func() time.Time) *Memory {
	return &Memory{now: now, entries: make(map[string]memoryEntry)}
}

// GetOrRefresh implements Store.  Readers never block on anything but
// the map mutex; an expired entry is replaced by calling loader inline.
func (m *Memory) GetOrRefresh(ctx context.Context, key string, ttl time.Duration, loader Loader) ([]catalog.Enriched, error) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok && m.now().Before(e.expiresAt) {
		m.mu.Unlock()
		return e.list, nil
	}
	m.mu.Unlock()

	list, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{list: list, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return list, nil
}

// Redis caches entries as JSON with the TTL enforced by the server via
// SETEX.  Redis errors are treated as misses so the catalog keeps
// working when the cache is unreachable.
type Redis struct {
	rdb *redis.Client
}

// GetOrRefresh implements Store.
func (r *Redis) GetOrRefresh(ctx context.Context, key string, ttl time.Duration, loader Loader) ([]catalog.Enriched, error) {
	if bs, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var list []catalog.Enriched
		if err := json.Unmarshal(bs, &list); err == nil {
			return list, nil
		}
		// Undecodable payload: drop it and fall through to the loader.
		_ = r.rdb.Del(ctx, key).Err()
	}

	list, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	if bs, err := json.Marshal(list); err == nil {
		_ = r.rdb.SetEx(ctx, key, bs, ttl).Err()
	}
	return list, nil
}
