// Package ratelimit throttles login attempts per client.
package ratelimit

import (
	"context"
	"time"

	"github.com/forumhub/backend/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter decides whether one more attempt under key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// New returns a Redis-backed limiter when REDIS_ADDR is set so that every
// replica shares the counters, and an in-process limiter otherwise. A
// non-positive limit disables throttling.
func New(ctx context.Context, redisCfg config.RedisConfig, cfg config.RateLimitConfig, log *zap.Logger) (Limiter, func() error, error) {
	noop := func() error { return nil }
	if cfg.LoginLimit <= 0 || cfg.LoginWindow <= 0 {
		log.Info("login rate limiting disabled")
		return Unlimited{}, noop, nil
	}

	if redisCfg.Addr == "" {
		log.Info("login rate limiting in memory", zap.Int("limit", cfg.LoginLimit), zap.Duration("window", cfg.LoginWindow))
		return NewLocal(cfg.LoginLimit, cfg.LoginWindow), noop, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisCfg.Addr,
		Password:     redisCfg.Password,
		DB:           redisCfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, noop, err
	}
	log.Info("login rate limiting in redis", zap.String("addr", redisCfg.Addr), zap.Int("limit", cfg.LoginLimit))
	return NewRedis(client, "forum:ratelimit:", cfg.LoginLimit, cfg.LoginWindow), client.Close, nil
}

type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }
