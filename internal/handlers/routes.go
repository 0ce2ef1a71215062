package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the API. POST /api/analyze is kept for clients of the
// original endpoint.
func SetupRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler, parseHandler *ParseHandler) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/parse", parseHandler.HandleParse)

	app.Post("/api/analyze", analyzeHandler.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Recruitly AI CV Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/parse",
				"GET /api/v1/health",
			},
		})
	})
}

// ErrorHandler renders errors that escape a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
