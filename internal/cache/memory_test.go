package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/cache"
)

// fakeClock is an adjustable time source for TTL tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newStoreWithClock() (*cache.MemoryStore, *fakeClock) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return cache.NewMemoryStore(cache.WithClock(clk.Now)), clk
}

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newStoreWithClock()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestMemoryStore_Miss(t *testing.T) {
	ctx := context.Background()
	store, _ := newStoreWithClock()

	_, ok, err := store.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, clk := newStoreWithClock()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	clk.Advance(59 * time.Second)
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok, "entry should be live before the deadline")

	clk.Advance(2 * time.Second)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire once the TTL elapses")

	// the expired entry was reaped on read
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_DeleteAbsentKey(t *testing.T) {
	ctx := context.Background()
	store, _ := newStoreWithClock()

	// deleting a key that was never set must not error
	require.NoError(t, store.Delete(ctx, "never-set"))
}

func TestMemoryStore_SetReplaces(t *testing.T) {
	ctx := context.Background()
	store, _ := newStoreWithClock()

	require.NoError(t, store.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, store.Set(ctx, "k", []byte("new"), time.Minute))

	got, ok, _ := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestMemoryStore_ValueIsCopied(t *testing.T) {
	ctx := context.Background()
	store, _ := newStoreWithClock()

	src := []byte("payload")
	require.NoError(t, store.Set(ctx, "k", src, time.Minute))
	src[0] = 'X'

	got, ok, _ := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)
}

func TestMemoryStore_ZeroTTLStoresNothing(t *testing.T) {
	ctx := context.Background()
	store, _ := newStoreWithClock()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	_, ok, _ := store.Get(ctx, "k")
	assert.False(t, ok)
}
