package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp wires the scheduler routes under /api/v1. Metrics are served from
// gatherer at /api/v1/metrics.
func NewApp(handler SchedulerHandler, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/schemes", handler.Schemes)
		v1.Post("/mlfq/:scheme", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllSchemes)
		v1.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return app
}
