package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"talento/internal/models"
	"talento/internal/observability"
)

// CheckRateLimit applies a fixed-window counter in Redis for the given key.
// Returns true when the request is allowed. Redis failures fail open.
func CheckRateLimit(ctx context.Context, client *redis.Client, key string, limit int, window time.Duration) bool {
	if client == nil {
		return true
	}

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		observability.RedisErrors.Inc()
		slog.WarnContext(ctx, "rate limit check failed, allowing request", "key", key, "error", err)
		return true
	}

	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			observability.RedisErrors.Inc()
			slog.WarnContext(ctx, "rate limit expiry set failed", "key", key, "error", err)
		}
	}

	return count <= int64(limit)
}

// RateLimit limits requests per client IP for a route group. Disabled when
// APP_ENV=test so integration tests are not throttled.
func RateLimit(client *redis.Client, name string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if os.Getenv("APP_ENV") == "test" {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, c.IP())
		if !CheckRateLimit(c.UserContext(), client, key, limit, window) {
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewValidationError("Too many requests, please try again later"))
		}
		return c.Next()
	}
}
