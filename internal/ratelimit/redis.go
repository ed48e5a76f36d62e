package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window counter: INCR per attempt, EXPIRE set when
// the window opens.
type RedisLimiter struct {
	client    redis.UniversalClient
	keyPrefix string
	limit     int
	window    time.Duration
}

func NewRedis(client redis.UniversalClient, keyPrefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, keyPrefix: keyPrefix, limit: limit, window: window}
}

// Allow fails open: when Redis is unreachable the attempt is allowed and the
// error is returned for logging.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := r.keyPrefix + key

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.window).Err(); err != nil {
			return true, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return count <= int64(r.limit), nil
}
