// Package cache provides Redis connectivity and read-through caching for
// hot API responses. All cache operations fail open: a Redis outage degrades
// to database reads, never to request failures.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"talento/internal/config"
)

// Connect establishes a Redis connection from the configured URL or address.
func Connect(cfg *config.Config) (*redis.Client, error) {
	var opts *redis.Options

	if strings.HasPrefix(cfg.RedisURL, "redis://") || strings.HasPrefix(cfg.RedisURL, "rediss://") {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.RedisURL}
	}

	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = 500 * time.Millisecond
	opts.WriteTimeout = 500 * time.Millisecond

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Fail open: the API works without a cache, just slower.
		slog.Warn("Redis unavailable, continuing without cache", "error", err)
	} else {
		slog.Info("Redis connection established")
	}

	return client, nil
}
