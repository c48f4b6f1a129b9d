package rate_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:product-form:"

// RedisLimiter allows at most burst requests per window for each visitor,
// counted in redis so that every replica shares the same budget.
type RedisLimiter struct {
	rdb    redis.Cmdable
	burst  int
	window time.Duration
}

func NewRedisLimiter(rdb redis.Cmdable, burst int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, burst: burst, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := redisKeyPrefix + key

	var hits *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hits = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}

	return hits.Val() <= int64(l.burst), nil
}
