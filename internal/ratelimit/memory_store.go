package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count     int64
	expiresAt time.Time
}

// MemoryStore is a single-process Store used in tests and as a fallback
// when no redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (s *MemoryStore) Incr(
	_ context.Context,
	key string,
	window time.Duration,
) (int64, time.Duration, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	b, ok := s.buckets[key]
	if !ok || !b.expiresAt.After(now) {
		b = &bucket{expiresAt: now.Add(window)}
		s.buckets[key] = b
	}

	b.count++
	return b.count, b.expiresAt.Sub(now), nil
}
