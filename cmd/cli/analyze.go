package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"recruitly/cv-assistant/internal/config"
	"recruitly/cv-assistant/internal/models"
	"recruitly/cv-assistant/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume.pdf ...]",
	Short: "Analyze résumés against a job description",
	Long:  "Analyze local PDF résumés (or objects in the configured R2 bucket) against a job description and print the combined report.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile     string
	analyzeJobText     string
	analyzeR2Keys      []string
	analyzeOutputFile  string
	analyzeAPIKey      string
	analyzeConcurrency int
	analyzeScores      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to a text file holding the job description")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description text (alternative to --job)")
	analyzeCmd.Flags().StringSliceVar(&analyzeR2Keys, "r2-key", nil, "Object key of a résumé in the R2 bucket (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Write the combined report to this file instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Files analyzed in parallel (overrides ANALYSIS_CONCURRENCY)")
	analyzeCmd.Flags().BoolVar(&analyzeScores, "scores", false, "Print a match score table to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg := config.Load()

	jobDescription, err := readJobDescription(analyzeJobFile, analyzeJobText)
	if err != nil {
		return err
	}

	if len(args) > 0 && len(analyzeR2Keys) > 0 {
		return fmt.Errorf("cannot mix local files with --r2-key")
	}

	ctx := context.Background()

	var files []models.UploadedFile
	if len(analyzeR2Keys) > 0 {
		source, err := services.NewR2ObjectSource(ctx, cfg.R2)
		if err != nil {
			return err
		}
		files, err = source.Download(ctx, analyzeR2Keys)
		if err != nil {
			return err
		}
	} else {
		files, err = services.NewStorageService().ReadLocalFiles(args)
		if err != nil {
			return err
		}
	}

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = cfg.Gemini.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	geminiService, err := services.NewGeminiService(apiKey, cfg.Gemini.Model, cfg.Gemini.MaxOutputTokens)
	if err != nil {
		return err
	}

	concurrency := cfg.Analysis.Concurrency
	if analyzeConcurrency > 0 {
		concurrency = analyzeConcurrency
	}

	analyzer := services.NewAnalyzerService(
		services.NewPDFParserService(),
		services.NewAnalysisClient(geminiService, cfg.Gemini.Temperature),
		services.NewWorker(concurrency),
	)

	report, err := analyzer.AnalyzeBatch(ctx, models.AnalysisRequest{
		JobDescription: jobDescription,
		Files:          files,
	})
	if err != nil {
		return fmt.Errorf("failed to analyze CVs: %w", err)
	}

	combined := report.String()
	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, []byte(combined), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Combined report written to %s\n", analyzeOutputFile)
	} else {
		fmt.Print(combined)
	}

	if analyzeScores {
		parsed := services.NewResultParser().Parse(combined, jobDescription)
		printScores(parsed)
	}

	return nil
}

func readJobDescription(path, text string) (string, error) {
	if path != "" && text != "" {
		return "", fmt.Errorf("use either --job or --job-text, not both")
	}
	if path == "" {
		return text, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}

func printScores(parsed *models.ParsedReport) {
	for _, view := range parsed.Views() {
		fmt.Fprintf(os.Stderr, "%3d  %s\n", view.MatchScore, view.DisplayName)
	}
}
