// Package cache constructs the Redis client backing rate limiting and the
// health check.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect creates a Redis client for the given address. When Redis is
// unreachable it returns nil and the service runs without it; everything
// using the client fails open.
func Connect(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, continuing without it", "addr", addr, "error", err)
		return nil
	}

	slog.Info("redis connected", "addr", addr)
	return client
}
