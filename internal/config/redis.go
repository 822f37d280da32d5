package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient اتصال به Redis را راه‌اندازی می‌کند. اگر آدرس خالی باشد (nil, nil) برمی‌گرداند.
func NewRedisClient(ctx context.Context, c RedisConfig) (*redis.Client, error) {
	if c.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})

	// بررسی اتصال به Redis
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
