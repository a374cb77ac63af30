package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

var userColumns = []interface{}{
	"id", "email", "first_name", "last_name",
	"eco_points", "level", "carbon_footprint",
	"created_at", "updated_at",
}

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).
		From("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user, err := scanUser(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}

// Create inserts a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"id":               user.ID,
		"email":            user.Email,
		"first_name":       user.FirstName,
		"last_name":        user.LastName,
		"eco_points":       user.EcoPoints,
		"level":            user.Level,
		"carbon_footprint": user.CarbonFootprint,
		"created_at":       user.CreatedAt,
		"updated_at":       user.UpdatedAt,
	}

	query, args, err := a.db.Insert("users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// UpdateProfile updates the mutable profile fields and returns the
// updated user.
func (a *UserAdapter) UpdateProfile(ctx context.Context, id string, update repositories.ProfileUpdate) (*entities.User, error) {
	query, args, err := a.db.Update("users").
		Set(goqu.Record{
			"email":      update.Email,
			"first_name": update.FirstName,
			"last_name":  update.LastName,
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		Returning(userColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build profile update query", err)
	}

	user, err := scanUser(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update profile", err)
	}

	return user, nil
}

// IncrementPoints adds points and recomputes the level in one
// statement. The expression mirrors entities.LevelForPoints; keeping
// the read-modify-write inside the database closes the lost-update
// race between concurrent awards.
func (a *UserAdapter) IncrementPoints(ctx context.Context, id string, points int) (*entities.User, error) {
	query, args, err := a.db.Update("users").
		Set(goqu.Record{
			"eco_points": goqu.L("eco_points + ?", points),
			"level":      goqu.L("floor((eco_points + ?) / ?) + 1", points, entities.PointsPerLevel),
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		Returning(userColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build points update query", err)
	}

	user, err := scanUser(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to increment points", err)
	}

	return user, nil
}

// Top returns users ordered by eco-points descending
func (a *UserAdapter) Top(ctx context.Context, limit int) ([]*entities.User, error) {
	if limit <= 0 {
		limit = 10
	}

	query, args, err := a.db.Select(userColumns...).
		From("users").
		Order(goqu.I("eco_points").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build leaderboard query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list top users", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan user", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*entities.User, error) {
	user := &entities.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.EcoPoints,
		&user.Level,
		&user.CarbonFootprint,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
