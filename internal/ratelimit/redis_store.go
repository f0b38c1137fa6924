package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "ratelimit:"}
}

func (s *RedisStore) Incr(
	ctx context.Context,
	key string,
	window time.Duration,
) (int64, time.Duration, error) {

	fullKey := s.prefix + key

	count, err := s.rdb.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, 0, err
	}

	// First hit starts the window.
	if count == 1 {
		if err := s.rdb.Expire(ctx, fullKey, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := s.rdb.TTL(ctx, fullKey).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl < 0 {
		// Counter survived without a TTL (expired between INCR and
		// EXPIRE on a crashed first hit); reattach the window.
		if err := s.rdb.Expire(ctx, fullKey, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}

	return count, ttl, nil
}
