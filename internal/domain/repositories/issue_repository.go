package repositories

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// EnvironmentalIssueRepository defines issue persistence operations.
type EnvironmentalIssueRepository interface {
	Create(ctx context.Context, issue *entities.EnvironmentalIssue) error

	// ListByUser returns the user's issues newest first.
	ListByUser(ctx context.Context, userID string) ([]*entities.EnvironmentalIssue, error)

	// ListAll returns every reported issue newest first, for the
	// community map view.
	ListAll(ctx context.Context) ([]*entities.EnvironmentalIssue, error)

	UpdateStatus(ctx context.Context, id, status string) (*entities.EnvironmentalIssue, error)
}
