package ai

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
)

// MockAIProvider implements a canned AI provider for testing and local
// development without an API key.
type MockAIProvider struct{}

// NewMockAIProvider creates a new mock AI provider
func NewMockAIProvider() providers.AIProvider {
	return &MockAIProvider{}
}

// GenerateText returns a canned response
func (m *MockAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "Consider reducing consumption during peak hours and switching to energy-efficient appliances.", nil
}

// ClassifyImage returns a canned classification
func (m *MockAIProvider) ClassifyImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	return "Category: Plastic Bottle\nRecyclable: Yes\nConfidence: 92\nSuggestion: Rinse and place in the recycling bin.", nil
}
