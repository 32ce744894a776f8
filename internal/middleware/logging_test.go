package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxHandler_AddsRequestScopedAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(ctxHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	ctx = context.WithValue(ctx, UserIDKey, uint(7))
	logger.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-123", record["request_id"])
	assert.Equal(t, float64(7), record["user_id"])
}

func TestContextMiddleware_PropagatesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())

	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got, _ = c.UserContext().Value(RequestIDKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, got)
}
