package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler adapts the Prometheus scrape handler onto the Fiber router.
// Collector registration is idempotent, so mounting the route more than once
// is harmless.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()

	scrape := promhttp.Handler()

	return adaptor.HTTPHandler(scrape)
}
