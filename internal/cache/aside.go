package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"talento/internal/observability"
)

// GetJSON loads a cached value into dest. It returns false on a miss or on
// any Redis failure so callers always fall through to the source of truth.
func GetJSON(ctx context.Context, client *redis.Client, key string, dest interface{}) bool {
	if client == nil {
		return false
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			observability.RedisErrors.Inc()
			slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.WarnContext(ctx, "cache entry corrupt, discarding", "key", key, "error", err)
		client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value under key with the given TTL. Failures are logged
// and swallowed.
func SetJSON(ctx context.Context, client *redis.Client, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "cache marshal failed", "key", key, "error", err)
		return
	}
	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		observability.RedisErrors.Inc()
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

// Delete removes keys, swallowing failures. Stale entries age out via TTL
// if the delete is lost.
func Delete(ctx context.Context, client *redis.Client, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		observability.RedisErrors.Inc()
		slog.WarnContext(ctx, "cache invalidation failed", "keys", keys, "error", err)
	}
}
