package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the HTTP metrics collector once per process. Repeated
// app construction in tests must not re-register collectors.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wraps the collector as a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
