// Package ratelimit provides the in-process fixed-window counter used
// to throttle authentication endpoints. The store is process-local: in
// a multi-instance deployment swap in the Redis-backed store instead.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepThreshold bounds map growth; expired entries are dropped
// opportunistically once the map gets this large.
const sweepThreshold = 16384

type window struct {
	count int64
	start time.Time
}

// MemoryStore counts hits per key within a fixed window, in memory.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]window),
		now:     time.Now,
	}
}

// Incr registers a hit for key and returns the hit count in the current
// window plus the time remaining until the window resets.
func (s *MemoryStore) Incr(_ context.Context, key string, d time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= d {
		w = window{start: now}
	}
	w.count++
	s.windows[key] = w

	if len(s.windows) > sweepThreshold {
		s.sweep(now, d)
	}

	return w.count, d - now.Sub(w.start), nil
}

// sweep drops windows that already elapsed. Caller holds the lock.
func (s *MemoryStore) sweep(now time.Time, d time.Duration) {
	for key, w := range s.windows {
		if now.Sub(w.start) >= d {
			delete(s.windows, key)
		}
	}
}
