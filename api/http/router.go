package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artem13815/skillpath/api/http/handlers"
	"github.com/artem13815/skillpath/api/http/views"
)

// NewApp creates the Fiber app with HTML views, panic recovery and access logging, and registers routes.
func NewApp(advisor *handlers.AdvisorHandler, health *handlers.HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "skillpath",
		Views:   views.New(),
	})
	app.Use(recover.New())
	app.Use(logger.New())
	Register(app, advisor, health)
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, advisor *handlers.AdvisorHandler, health *handlers.HealthHandler) {
	// Web form and autocomplete
	app.Get("/", advisor.Form)
	app.Post("/", advisor.Submit)
	app.Get("/search_jobs", advisor.SearchJobs)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/analyses", advisor.Analyze)
	v1.Get("/jobs", advisor.SearchJobs)
}
