package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recruitly/cv-assistant/internal/models"
	"recruitly/cv-assistant/internal/services"
)

type ParseHandler struct {
	parser services.ResultParser
}

func NewParseHandler(parser services.ResultParser) *ParseHandler {
	return &ParseHandler{
		parser: parser,
	}
}

// HandleParse handles POST /parse
func (h *ParseHandler) HandleParse(c *fiber.Ctx) error {
	var req models.ParseRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := services.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "report is required",
		})
	}

	return c.JSON(h.parser.Parse(req.Report, req.JobDescription))
}
