package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

const chatUnavailable = "Unable to provide assistance"

// ChatService is the sustainability copilot: a thin prompt wrapper
// around the AI provider.
type ChatService struct {
	ai providers.AIProvider
}

// NewChatService creates a new chat service.
func NewChatService(ai providers.AIProvider) *ChatService {
	return &ChatService{ai: ai}
}

// Respond answers a user message with sustainability advice.
func (s *ChatService) Respond(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.NewValidationError("message is required")
	}

	prompt := fmt.Sprintf(`You are an AI sustainability assistant for Mera Pruthvi platform. User asks: %q. Provide helpful, actionable advice about environmental sustainability, carbon reduction, waste management, or resource optimization. Be concise (2-3 sentences).`, message)

	response, err := s.ai.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(response) == "" {
		log.Warn().Err(err).Msg("chat response unavailable, using fallback")
		return chatUnavailable, nil
	}
	return response, nil
}
