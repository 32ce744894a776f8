// Package middleware contains Fiber middleware for logging, rate limiting,
// metrics and tracing.
package middleware

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

const (
	// RequestIDKey carries the per-request ID through context for log correlation.
	RequestIDKey contextKey = "request_id"
	// UserIDKey carries the authenticated user ID, when present.
	UserIDKey contextKey = "user_id"
)

// ctxHandler decorates every log record with request-scoped attributes
// pulled from the context.
type ctxHandler struct {
	slog.Handler
}

func (h ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	if userID, ok := ctx.Value(UserIDKey).(uint); ok && userID != 0 {
		r.AddAttrs(slog.Uint64("user_id", uint64(userID)))
	}
	return h.Handler.Handle(ctx, r)
}

// SetupLogger installs a JSON slog logger that understands request context.
func SetupLogger(env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	base := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(ctxHandler{Handler: base}))
}

// ContextMiddleware copies the Fiber request ID into the request's
// context.Context so downstream layers can log it. The user ID is added
// later by the auth middleware, once the token has been verified.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if requestID, ok := c.Locals("requestid").(string); ok {
			c.SetUserContext(context.WithValue(c.UserContext(), RequestIDKey, requestID))
		}
		return c.Next()
	}
}

// StructuredLogger emits one slog record per request with method, path,
// status and latency.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"ip", c.IP(),
		}
		if err != nil {
			attrs = append(attrs, "error", err)
		}

		switch {
		case status >= 500:
			slog.ErrorContext(c.UserContext(), "request completed", attrs...)
		case status >= 400:
			slog.WarnContext(c.UserContext(), "request completed", attrs...)
		default:
			slog.InfoContext(c.UserContext(), "request completed", attrs...)
		}

		return err
	}
}
