package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"recruitly/cv-assistant/internal/models"
)

type fakeGemini struct {
	text        string
	err         error
	prompts     []string
	temperature float32
}

func (f *fakeGemini) GenerateText(_ context.Context, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.temperature = temperature
	return f.text, f.err
}

func (f *fakeGemini) ModelName() string {
	return "fake-model"
}

// fakeExtractor returns the text registered for a file name; unknown files
// extract to empty text.
type fakeExtractor struct {
	mu    sync.Mutex
	texts map[string]string
	calls []string
}

func (f *fakeExtractor) ExtractText(data []byte) (string, error) {
	return string(data), nil
}

func (f *fakeExtractor) Extract(fileName string, _ []byte) models.ExtractedDocument {
	f.mu.Lock()
	f.calls = append(f.calls, fileName)
	f.mu.Unlock()
	return models.ExtractedDocument{FileName: fileName, Text: f.texts[fileName]}
}

type fakeAnalysisClient struct {
	mu      sync.Mutex
	prompts []string
	respond func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeAnalysisClient) RequestAnalysis(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.respond == nil {
		return "Candidate: someone\nMatch Score: 50/100", nil
	}
	return f.respond(ctx, prompt)
}

func (f *fakeAnalysisClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// candidateFromPrompt recovers the candidate text inserted by the prompt
// builder.
func candidateFromPrompt(prompt string) string {
	start := strings.Index(prompt, "Candidate CV:\n")
	end := strings.Index(prompt, "\n\nFollow these instructions")
	if start < 0 || end < 0 {
		return ""
	}
	return prompt[start+len("Candidate CV:\n") : end]
}

// buildTestPDF writes a one-page PDF showing text in Helvetica.
func buildTestPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}
