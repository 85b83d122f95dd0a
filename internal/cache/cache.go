// Package cache provides the key/value cache store used by the listing and
// statistics read paths. Entries are opaque byte payloads with a per-entry
// TTL; the store is an accelerator, never a source of truth, and every
// caller must be able to fall back to recomputation when it misses or fails.
package cache

import (
	"context"
	"time"
)

// Store is the minimal cache contract the read paths depend on.
// Implementations must treat deletion of an absent key as a no-op and should
// degrade by returning an error rather than blocking callers.
type Store interface {
	// Get returns the raw bytes for key. ok is false on a miss or an
	// expired entry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key for the given TTL, replacing any previous entry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key. Absence is not an error.
	Delete(ctx context.Context, key string) error
}
