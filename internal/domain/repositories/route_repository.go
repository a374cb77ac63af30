package repositories

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// NavigationRouteRepository defines route persistence operations.
type NavigationRouteRepository interface {
	Create(ctx context.Context, route *entities.NavigationRoute) error

	// ListByUser returns the user's routes newest first.
	ListByUser(ctx context.Context, userID string) ([]*entities.NavigationRoute, error)
}
