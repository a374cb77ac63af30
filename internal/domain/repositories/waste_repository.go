package repositories

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// WasteClassificationRepository defines waste classification persistence.
type WasteClassificationRepository interface {
	Create(ctx context.Context, classification *entities.WasteClassification) error

	// ListByUser returns the user's classifications newest first.
	ListByUser(ctx context.Context, userID string) ([]*entities.WasteClassification, error)
}
