package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"recruitly/cv-assistant/internal/models"
	"recruitly/cv-assistant/internal/services"
)

const (
	JobDescriptionField = "jobDesc"
	FilesField          = "files"
	AnalysisIDHeader    = "X-Analysis-ID"

	MissingInputMessage = "Missing job description or files."
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
	}
}

// HandleAnalyze handles POST /analyze. The response body is the plain-text
// combined report.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return sendText(c, fiber.StatusBadRequest, MissingInputMessage)
	}

	jobDesc := ""
	if values := form.Value[JobDescriptionField]; len(values) > 0 {
		jobDesc = values[0]
	}
	files := form.File[FilesField]

	if strings.TrimSpace(jobDesc) == "" || len(files) == 0 {
		return sendText(c, fiber.StatusBadRequest, MissingInputMessage)
	}

	uploads, err := h.storageService.ReadUploads(files)
	if err != nil {
		log.Printf("❌ Error in analyze route: %v", err)
		return sendText(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to analyze CVs: %v", err))
	}

	report, err := h.analyzer.AnalyzeBatch(c.UserContext(), models.AnalysisRequest{
		JobDescription: jobDesc,
		Files:          uploads,
	})
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return sendText(c, fiber.StatusBadRequest, MissingInputMessage)
		}

		log.Printf("❌ Error in analyze route: %v", err)
		return sendText(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to analyze CVs: %v", err))
	}

	c.Set(AnalysisIDHeader, report.ID.String())
	return sendText(c, fiber.StatusOK, report.String())
}

func sendText(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}
