package providers

import (
	"context"
)

// AIProvider is the generative AI service used for suggestions, chat
// and waste image classification. It is a fallible black box: callers
// must degrade to defaults when it errors.
type AIProvider interface {
	// GenerateText returns free text for a prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// ClassifyImage runs a vision prompt over raw image bytes and
	// returns the model's text response.
	ClassifyImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error)
}
