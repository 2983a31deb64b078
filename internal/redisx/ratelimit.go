package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter ограничивает число операций по ключу в фиксированном окне
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRateLimiter создает RateLimiter. При rdb == nil или limit <= 0 ограничение выключено.
func NewRateLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, prefix: prefix, limit: int64(limit), window: window}
}

// Allow учитывает операцию и сообщает, укладывается ли она в лимит
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.rdb == nil || l.limit <= 0 {
		return true, nil
	}

	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, l.prefix+key)
		// Окно начинается с первой операции
		pipe.ExpireNX(ctx, l.prefix+key, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limiter: failed to count key %s: %w", key, err)
	}

	return incr.Val() <= l.limit, nil
}
