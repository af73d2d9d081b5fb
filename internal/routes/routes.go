package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payment-analytics-service/internal/controller"
)

// Register attaches all HTTP routes to the Fiber app.
func Register(app *fiber.App, analyticsController controller.AnalyticsController) {
	analytics := app.Group("/analytics")
	analytics.Get("/payments", analyticsController.GetPaymentAnalytics)
	analytics.Get("/conversions", analyticsController.GetConversionMetrics)
	analytics.Get("/insights", analyticsController.GetPaymentInsights)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
