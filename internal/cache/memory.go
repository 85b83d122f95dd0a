package cache

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// entry is a stored value with an absolute expiry deadline.
type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-entry TTLs.
// Expired entries are dropped lazily on read; there is no background janitor,
// keeping the process free of internal tasks.
type MemoryStore struct {
	entries *xsync.MapOf[string, entry]
	now     func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces the store's time source. Tests use this to advance
// time deterministically past entry deadlines.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: xsync.NewMapOf[string, entry](),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the live value stored under key. An entry past its deadline is
// removed and reported as a miss.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.entries.Load(key)
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		s.entries.Delete(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores a copy of value under key until now+ttl.
// A non-positive TTL stores nothing, which keeps zero-valued configs harmless.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	buf := make([]byte, len(value))
	copy(buf, value)
	s.entries.Store(key, entry{value: buf, expiresAt: s.now().Add(ttl)})
	return nil
}

// Delete removes key if present.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.entries.Delete(key)
	return nil
}

// Len reports the number of entries currently held, including not-yet-reaped
// expired ones. Exposed for tests and the health endpoint.
func (s *MemoryStore) Len() int {
	return s.entries.Size()
}
