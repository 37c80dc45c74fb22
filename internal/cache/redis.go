package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
)

// RedisCache shares the snapshot across processes, so cmd/snapshot can warm
// the table that cmd/api serves.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*model.PriceTable, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot read: %w", err)
	}

	var table model.PriceTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}

	return &table, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, table *model.PriceTable, ttl time.Duration) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}

	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
