package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis for the GET response cache. Returns nil
// when no address is configured or the server is unreachable; callers treat
// a nil client as "cache off".
func NewRedisClient(cfg App) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, response cache disabled", "addr", cfg.RedisAddr, "err", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
