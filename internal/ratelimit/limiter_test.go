package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := New(NewMemoryStore(), 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "ip:route")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, int64(2-i), res.Remaining)
	}

	res, err := limiter.Allow(ctx, "ip:route")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := New(NewMemoryStore(), 1, time.Minute)
	ctx := context.Background()

	res, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	res, err = limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestLimiter_WindowResets(t *testing.T) {
	store := NewMemoryStore()

	current := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	limiter := New(store, 1, time.Minute)
	ctx := context.Background()

	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	current = current.Add(61 * time.Second)

	res, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed, "a fresh window starts after expiry")
}

func TestLimiter_Defaults(t *testing.T) {
	limiter := New(NewMemoryStore(), 0, 0)

	assert.Equal(t, int64(5), limiter.limit)
	assert.Equal(t, time.Minute, limiter.window)
}
