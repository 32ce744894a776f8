package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"talento/internal/observability"
)

// Tracing opens a server span per request and records route, method and
// status. Skips health and metrics endpoints to keep traces useful.
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/health" || path == "/health/ready" || path == "/metrics" {
			return c.Next()
		}

		ctx, span := observability.Tracer.Start(c.UserContext(),
			fmt.Sprintf("%s %s", c.Method(), path),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.target", path),
			),
		)
		defer span.End()

		c.SetUserContext(ctx)
		err := c.Next()

		status := c.Response().StatusCode()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil || status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
			if err != nil {
				span.RecordError(err)
			}
		}

		return err
	}
}
