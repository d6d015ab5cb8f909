package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:auth:"

// RedisLimiter implements a sliding-window counter on a redis sorted set.
// One set per key; members are request timestamps, trimmed on every check.
type RedisLimiter struct {
	client *redis.Client
	opts   Options
}

func NewRedisLimiter(client *redis.Client, opts Options) *RedisLimiter {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	return &RedisLimiter{client: client, opts: opts}
}

// Allow records the request and reports whether it fits the window. The
// request is counted even when rejected, so hammering a limited key does not
// shorten the wait.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	redisKey := keyPrefix + key
	windowStart := now.Add(-l.opts.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	card := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, redisKey, l.opts.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit pipeline: %w", err)
	}

	return card.Val() < int64(l.opts.Limit), nil
}

// Remaining returns how many requests the key has left in the current window.
func (l *RedisLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	redisKey := keyPrefix + key
	windowStart := time.Now().Add(-l.opts.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	card := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit count: %w", err)
	}

	used := card.Val()
	remaining := int64(l.opts.Limit) - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Reset clears the window for a key.
func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}
