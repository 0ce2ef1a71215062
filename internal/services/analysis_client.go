package services

import (
	"context"
	"errors"
	"strings"
)

// FallbackResponse is recorded when the model service answered without a
// usable completion.
const FallbackResponse = "No response."

type AnalysisClient interface {
	RequestAnalysis(ctx context.Context, prompt string) (string, error)
}

type analysisClient struct {
	geminiService GeminiService
	temperature   float32
}

func NewAnalysisClient(geminiService GeminiService, temperature float32) AnalysisClient {
	return &analysisClient{
		geminiService: geminiService,
		temperature:   temperature,
	}
}

// RequestAnalysis implements AnalysisClient. Transport failures are returned
// as *ServiceError; an empty completion becomes FallbackResponse.
func (a *analysisClient) RequestAnalysis(ctx context.Context, prompt string) (string, error) {
	text, err := a.geminiService.GenerateText(ctx, prompt, a.temperature)
	if errors.Is(err, ErrEmptyCompletion) {
		return FallbackResponse, nil
	}
	if err != nil {
		return "", &ServiceError{Op: "analysis request failed", Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackResponse, nil
	}

	return text, nil
}
