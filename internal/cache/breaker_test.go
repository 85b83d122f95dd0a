package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/cache"
)

// failingStore always errors, simulating an unreachable cache backend.
type failingStore struct {
	calls int
}

func (f *failingStore) Get(context.Context, string) ([]byte, bool, error) {
	f.calls++
	return nil, false, errors.New("connection refused")
}

func (f *failingStore) Set(context.Context, string, []byte, time.Duration) error {
	f.calls++
	return errors.New("connection refused")
}

func (f *failingStore) Delete(context.Context, string) error {
	f.calls++
	return errors.New("connection refused")
}

func testBreakerConfig() cache.BreakerConfig {
	cfg := cache.DefaultBreakerConfig()
	cfg.MinRequests = 3
	return cfg
}

func TestBreakerStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	store := cache.NewBreakerStore(cache.NewMemoryStore(), testBreakerConfig())

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
	require.NoError(t, store.Delete(ctx, "k"))
	assert.Equal(t, gobreaker.StateClosed, store.State())
}

func TestBreakerStore_OpensAfterSustainedFailure(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{}
	store := cache.NewBreakerStore(backend, testBreakerConfig())

	for i := 0; i < 3; i++ {
		_, _, err := store.Get(ctx, "k")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, store.State())

	// Once open, calls fail fast without reaching the backend.
	before := backend.calls
	_, _, err := store.Get(ctx, "k")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, before, backend.calls)
}

func TestBreakerStore_ErrorsSurfaceAsMisses(t *testing.T) {
	ctx := context.Background()
	store := cache.NewBreakerStore(&failingStore{}, testBreakerConfig())

	v, ok, err := store.Get(ctx, "k")
	require.Error(t, err)
	assert.Nil(t, v)
	assert.False(t, ok)
}
