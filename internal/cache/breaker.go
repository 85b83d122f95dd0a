package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig holds the circuit breaker settings for a wrapped Store.
type BreakerConfig struct {
	// Name is the circuit breaker name for logging
	Name string

	// MaxRequests is the maximum number of requests allowed in half-open state
	MaxRequests uint32

	// Interval is the cyclic period of the closed state to clear success/failure counts
	Interval time.Duration

	// Timeout is how long to wait in open state before trying again
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the circuit
	FailureThreshold float64

	// MinRequests is the minimum number of requests before the ratio is evaluated
	MinRequests uint32
}

// DefaultBreakerConfig returns settings tuned for an external cache store:
// trip on sustained failure, retry after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "cache-store",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// BreakerStore wraps a Store with circuit breaker protection so that a
// failing cache backend stops being hammered and callers fall through to
// recomputation immediately instead of waiting on a dead dependency.
type BreakerStore struct {
	cb   *gobreaker.CircuitBreaker
	next Store
}

// NewBreakerStore wraps next with a circuit breaker using the given config.
func NewBreakerStore(next Store, cfg BreakerConfig) *BreakerStore {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("cache circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	return &BreakerStore{
		cb:   gobreaker.NewCircuitBreaker(settings),
		next: next,
	}
}

type getResult struct {
	value []byte
	ok    bool
}

// Get reads through the breaker. When the circuit is open the error returns
// immediately without touching the backend; callers treat it as a miss.
func (b *BreakerStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		v, ok, err := b.next.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return getResult{value: v, ok: ok}, nil
	})
	if err != nil {
		return nil, false, err
	}
	r := res.(getResult)
	return r.value, r.ok, nil
}

// Set writes through the breaker.
func (b *BreakerStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Set(ctx, key, value, ttl)
	})
	return err
}

// Delete removes through the breaker. Invalidation of an unreachable store is
// safe to skip: entries expire on their own within one TTL.
func (b *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Delete(ctx, key)
	})
	return err
}

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}
