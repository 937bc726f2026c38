package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cadetnet/dutylog-api/internal/config"
	"github.com/cadetnet/dutylog-api/internal/handler"
	"github.com/cadetnet/dutylog-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	LogHandler     *handler.LogHandler
	ImageHandler   *handler.ImageHandler
	CommentHandler *handler.CommentHandler
	AdminHandler   *handler.AdminHandler
	// Identity gates duty log routes behind the domain-restricted identity
	// check; AdminIdentity verifies the token but leaves the allow-list
	// decision to the handler.
	Identity      fiber.Handler
	AdminIdentity fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	identity := deps.Identity
	if identity == nil {
		identity = func(c *fiber.Ctx) error { return c.Next() }
	}
	adminIdentity := deps.AdminIdentity
	if adminIdentity == nil {
		adminIdentity = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.LogHandler != nil {
		deps.LogHandler.Register(app.Group("/api", identity))
	}

	// Image upload and inspection comments are open to kiosk clients that
	// carry no identity; retrieval of images likewise.
	if deps.ImageHandler != nil {
		deps.ImageHandler.Register(api)
	}
	if deps.CommentHandler != nil {
		deps.CommentHandler.Register(api)
	}

	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(app.Group("/api", adminIdentity))
	}
}
