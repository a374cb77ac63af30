package repositories

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Email     string
	FirstName string
	LastName  string
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*entities.User, error)

	// IncrementPoints adds points to the user's eco-point total and
	// recomputes the level in a single statement, so concurrent awards
	// for the same user cannot lose updates. Returns the updated user,
	// or a NotFound error when the user does not exist.
	IncrementPoints(ctx context.Context, id string, points int) (*entities.User, error)

	// Top returns up to limit users ordered by eco-points descending.
	Top(ctx context.Context, limit int) ([]*entities.User, error)
}
