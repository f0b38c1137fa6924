package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key inside a fixed window. Implementations back
// the counter with some shared TTL'd key-value storage so the limit
// holds across replicas instead of living in one process.
type Store interface {
	// Incr bumps the counter for key, starting a fresh window with the
	// given TTL when the key is new, and returns the count plus the
	// time left in the current window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type Limiter struct {
	store  Store
	limit  int64
	window time.Duration
}

func New(store Store, limit int64, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{store: store, limit: limit, window: window}
}

func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	count, ttl, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return Result{}, err
	}

	if count > l.limit {
		return Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: ttl,
		}, nil
	}

	return Result{
		Allowed:   true,
		Remaining: l.limit - count,
	}, nil
}
