package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

const defaultModel = "gemini-2.5-flash"

// GeminiProvider implements the AIProvider using Google's Gemini API.
// All calls go through a circuit breaker so a misbehaving upstream trips
// fast instead of piling up request timeouts.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiProvider creates a new Gemini AI provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (providers.AIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 2,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &GeminiProvider{
		client:  client,
		model:   model,
		breaker: breaker,
	}, nil
}

// GenerateText returns free text for a prompt.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
		if err != nil {
			return nil, err
		}
		return resp.Text(), nil
	})
	if err != nil {
		return "", apperrors.NewExternalError("gemini text generation failed", err)
	}
	return result.(string), nil
}

// ClassifyImage runs a vision prompt over raw image bytes.
func (p *GeminiProvider) ClassifyImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.NewValidationError("image data is required")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
		if err != nil {
			return nil, err
		}
		return resp.Text(), nil
	})
	if err != nil {
		return "", apperrors.NewExternalError("gemini image classification failed", err)
	}
	return result.(string), nil
}
