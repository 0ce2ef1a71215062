package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	ModelName() string
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
}

func NewGeminiService(apiKey, modelName string, maxOutputTokens int32) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	if maxOutputTokens <= 0 {
		maxOutputTokens = 4096
	}

	return &geminiService{
		client:          client,
		modelName:       modelName,
		maxOutputTokens: maxOutputTokens,
	}, nil
}

// ModelName implements GeminiService.
func (g *geminiService) ModelName() string {
	return g.modelName
}

// GenerateText implements GeminiService. A response without text yields
// ErrEmptyCompletion.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		log.Println("⚠️  Gemini API returned nil response")
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			log.Printf("⚠️  No text content in response (finish reason: %s)", resp.Candidates[0].FinishReason)
		} else {
			log.Println("⚠️  No text content in response")
		}
		return "", ErrEmptyCompletion
	}

	return text, nil
}
