package repositories

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// ResourceEntryRepository defines resource entry persistence operations.
type ResourceEntryRepository interface {
	Create(ctx context.Context, entry *entities.ResourceEntry) error

	// ListByUser returns the user's entries newest first.
	ListByUser(ctx context.Context, userID string) ([]*entities.ResourceEntry, error)
}
