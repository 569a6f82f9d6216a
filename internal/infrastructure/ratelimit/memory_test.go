package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryStore_CountsWithinWindow(t *testing.T) {
	s := NewMemoryStore()
	window := 15 * time.Minute

	for want := int64(1); want <= 5; want++ {
		count, _, err := s.Incr(context.Background(), "10.0.0.1", window)
		if err != nil {
			t.Fatalf("Incr returned error: %v", err)
		}
		if count != want {
			t.Fatalf("expected count %d, got %d", want, count)
		}
	}

	// A different key counts independently.
	count, _, err := s.Incr(context.Background(), "10.0.0.2", window)
	if err != nil {
		t.Fatalf("Incr returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected fresh count for new key, got %d", count)
	}
}

func TestMemoryStore_WindowReset(t *testing.T) {
	s := NewMemoryStore()
	window := 15 * time.Minute

	base := time.Now()
	s.now = func() time.Time { return base }

	for i := 0; i < 6; i++ {
		if _, _, err := s.Incr(context.Background(), "10.0.0.1", window); err != nil {
			t.Fatalf("Incr returned error: %v", err)
		}
	}

	// Advance past the window: counting starts over.
	s.now = func() time.Time { return base.Add(window + time.Second) }

	count, ttl, err := s.Incr(context.Background(), "10.0.0.1", window)
	if err != nil {
		t.Fatalf("Incr returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count reset to 1, got %d", count)
	}
	if ttl != window {
		t.Fatalf("expected full window remaining, got %v", ttl)
	}
}

func TestMemoryStore_TTLCountsDown(t *testing.T) {
	s := NewMemoryStore()
	window := 15 * time.Minute

	base := time.Now()
	s.now = func() time.Time { return base }
	if _, _, err := s.Incr(context.Background(), "10.0.0.1", window); err != nil {
		t.Fatalf("Incr returned error: %v", err)
	}

	s.now = func() time.Time { return base.Add(5 * time.Minute) }
	_, ttl, err := s.Incr(context.Background(), "10.0.0.1", window)
	if err != nil {
		t.Fatalf("Incr returned error: %v", err)
	}
	if ttl != 10*time.Minute {
		t.Fatalf("expected 10m remaining, got %v", ttl)
	}
}

func TestMemoryStore_SweepDropsExpired(t *testing.T) {
	s := NewMemoryStore()
	window := time.Minute

	base := time.Now()
	s.now = func() time.Time { return base }
	for i := 0; i < sweepThreshold+1; i++ {
		key := fmt.Sprintf("10.0.%d.%d", i/256, i%256)
		if _, _, err := s.Incr(context.Background(), key, window); err != nil {
			t.Fatalf("Incr returned error: %v", err)
		}
	}

	// All windows elapsed; the next insert triggers a sweep.
	s.now = func() time.Time { return base.Add(2 * window) }
	if _, _, err := s.Incr(context.Background(), "fresh", window); err != nil {
		t.Fatalf("Incr returned error: %v", err)
	}

	s.mu.Lock()
	size := len(s.windows)
	s.mu.Unlock()
	if size != 1 {
		t.Fatalf("expected sweep to leave 1 window, got %d", size)
	}
}
