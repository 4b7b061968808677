package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/catalog"
	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/model"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func listOf(ids ...uint64) []catalog.Enriched {
	out := make([]catalog.Enriched, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Enriched{Vehicle: model.Vehicle{ID: id}})
	}
	return out
}

func TestMemoryGetOrRefresh(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemory(clock.Now)

	calls := 0
	loader := func(context.Context) ([]catalog.Enriched, error) {
		calls++
		return listOf(uint64(calls)), nil
	}

	t.Run("loads on first access", func(t *testing.T) {
		got, err := store.GetOrRefresh(ctx, "stock", 30*time.Second, loader)
		require.NoError(t, err)
		require.Equal(t, listOf(1), got)
		require.Equal(t, 1, calls)
	})

	t.Run("serves cached list within ttl", func(t *testing.T) {
		clock.Advance(29 * time.Second)
		got, err := store.GetOrRefresh(ctx, "stock", 30*time.Second, loader)
		require.NoError(t, err)
		require.Equal(t, listOf(1), got, "stale read within the ttl window is expected")
		require.Equal(t, 1, calls)
	})

	t.Run("refreshes after expiry", func(t *testing.T) {
		clock.Advance(2 * time.Second)
		got, err := store.GetOrRefresh(ctx, "stock", 30*time.Second, loader)
		require.NoError(t, err)
		require.Equal(t, listOf(2), got)
		require.Equal(t, 2, calls)
	})

	t.Run("keys are independent", func(t *testing.T) {
		_, err := store.GetOrRefresh(ctx, "other", 30*time.Second, loader)
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})
}

func TestMemoryLoaderError(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(0, 0)}
	store := NewMemory(clock.Now)

	boom := errors.New("storage down")
	_, err := store.GetOrRefresh(ctx, "stock", time.Minute, func(context.Context) ([]catalog.Enriched, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	// A failed load must not poison the cache: the next loader runs.
	got, err := store.GetOrRefresh(ctx, "stock", time.Minute, func(context.Context) ([]catalog.Enriched, error) {
		return listOf(7), nil
	})
	require.NoError(t, err)
	require.Equal(t, listOf(7), got)
}

func TestNewFallsBackToMemory(t *testing.T) {
	store := New(nil)
	_, ok := store.(*Memory)
	require.True(t, ok, "nil redis client must degrade to the in-process store")
}
