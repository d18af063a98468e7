// Package ai wraps the Gemini API for answer generation and text embeddings.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	apperrors "github.com/duynguyendang/gitguide/pkg/common/errors"
)

const (
	defaultModel          = "gemini-1.5-pro"
	defaultEmbeddingModel = "text-embedding-004"

	// Answer temperature. Recommendations should vary a little between
	// conversations; this is not a technical-accuracy setting.
	defaultTemperature = 0.7
)

// GeminiService generates answers and embeds texts.
type GeminiService struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	embedding *genai.EmbeddingModel
}

// NewGeminiService creates the service. An empty apiKey falls back to the
// GEMINI_API_KEY environment variable; the model can be overridden with
// GEMINI_MODEL.
func NewGeminiService(ctx context.Context, apiKey string) (*GeminiService, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := os.Getenv("GEMINI_MODEL")
	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(defaultTemperature)

	return &GeminiService{
		client:    client,
		model:     model,
		embedding: client.EmbeddingModel(defaultEmbeddingModel),
	}, nil
}

// Generate produces an answer for the rendered prompt. Failures wrap
// apperrors.ErrRemoteUnavailable so callers can recover locally.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini request failed: %v", apperrors.ErrRemoteUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", apperrors.ErrRemoteUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// Embed turns text into an embedding vector.
func (s *GeminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := s.embedding.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("%w: embedding request failed: %v", apperrors.ErrRemoteUnavailable, err)
	}
	if resp.Embedding == nil {
		return nil, fmt.Errorf("%w: embedding response empty", apperrors.ErrRemoteUnavailable)
	}
	return resp.Embedding.Values, nil
}

// Close releases the underlying client.
func (s *GeminiService) Close() error {
	return s.client.Close()
}
