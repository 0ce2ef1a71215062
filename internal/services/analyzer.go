package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"recruitly/cv-assistant/internal/models"
)

// ExtractionFailedMessage is the section body for a file whose text could not
// be extracted.
const ExtractionFailedMessage = "⚠️ Could not extract text from this PDF."

type AnalyzerService interface {
	AnalyzeBatch(ctx context.Context, req models.AnalysisRequest) (*models.CombinedReport, error)
}

type analyzerService struct {
	pdfParser      PDFParserService
	analysisClient AnalysisClient
	promptBuilder  *PromptBuilder
	worker         Worker
}

func NewAnalyzerService(
	pdfParser PDFParserService,
	analysisClient AnalysisClient,
	worker Worker,
) AnalyzerService {
	return &analyzerService{
		pdfParser:      pdfParser,
		analysisClient: analysisClient,
		promptBuilder:  NewPromptBuilder(),
		worker:         worker,
	}
}

// AnalyzeBatch implements AnalyzerService. Extraction failures and empty
// completions are recorded in the report; a service failure aborts the batch.
func (a *analyzerService) AnalyzeBatch(ctx context.Context, req models.AnalysisRequest) (*models.CombinedReport, error) {
	if err := ValidateStruct(req); err != nil {
		return nil, err
	}

	report := &models.CombinedReport{
		ID:             uuid.New(),
		JobDescription: req.JobDescription,
		Reports:        make([]models.CandidateReport, len(req.Files)),
	}

	log.Printf("🔄 Starting analysis batch %s: %d file(s)", report.ID, len(req.Files))

	err := a.worker.Run(ctx, len(req.Files), func(ctx context.Context, i int) error {
		candidate, err := a.analyzeFile(ctx, report.ID, req.JobDescription, req.Files[i])
		if err != nil {
			return err
		}
		report.Reports[i] = candidate
		return nil
	})
	if err != nil {
		log.Printf("❌ Analysis batch %s failed: %v", report.ID, err)
		return nil, err
	}

	log.Printf("✅ Analysis batch %s completed", report.ID)
	return report, nil
}

func (a *analyzerService) analyzeFile(ctx context.Context, batchID uuid.UUID, jobDescription string, file models.UploadedFile) (models.CandidateReport, error) {
	log.Printf("📄 [%s] Parsing %s...", batchID, file.FileName)
	doc := a.pdfParser.Extract(file.FileName, file.Content)

	if doc.Text == "" {
		return models.CandidateReport{
			FileName:     file.FileName,
			AnalysisText: ExtractionFailedMessage,
			Status:       models.StatusExtractionFailed,
		}, nil
	}

	prompt := a.promptBuilder.BuildCandidateAnalysisPrompt(jobDescription, doc.Text)
	log.Printf("🤖 [%s] Analyzing %s with LLM (prompt: %d characters)", batchID, file.FileName, len(prompt))

	analysis, err := a.analysisClient.RequestAnalysis(ctx, prompt)
	if err != nil {
		return models.CandidateReport{}, fmt.Errorf("failed to analyze %s: %w", file.FileName, err)
	}

	status := models.StatusAnalyzed
	if analysis == FallbackResponse {
		status = models.StatusNoResponse
	}

	return models.CandidateReport{
		FileName:     file.FileName,
		AnalysisText: analysis,
		Status:       status,
	}, nil
}
