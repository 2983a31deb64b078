package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduplicator помнит обработанные ключи ограниченное время.
// Пропущенный ключ не ломает обработку: окончательную проверку делает база.
type Deduplicator struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewDeduplicator создает Deduplicator. При rdb == nil все ключи считаются новыми.
func NewDeduplicator(rdb *redis.Client, prefix string, ttl time.Duration) *Deduplicator {
	return &Deduplicator{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Seen сообщает, что ключ уже обработан
func (d *Deduplicator) Seen(ctx context.Context, key string) (bool, error) {
	if d.rdb == nil {
		return false, nil
	}

	n, err := d.rdb.Exists(ctx, d.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("dedup: failed to check key %s: %w", key, err)
	}
	return n > 0, nil
}

// Remember отмечает ключ обработанным
func (d *Deduplicator) Remember(ctx context.Context, key string) error {
	if d.rdb == nil {
		return nil
	}

	if err := d.rdb.Set(ctx, d.prefix+key, 1, d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup: failed to remember key %s: %w", key, err)
	}
	return nil
}
