package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// ResourceAdapter implements the ResourceEntryRepository interface
type ResourceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewResourceAdapter creates a new resource entry adapter
func NewResourceAdapter(client *postgres.Client) repositories.ResourceEntryRepository {
	return &ResourceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a resource entry
func (a *ResourceAdapter) Create(ctx context.Context, entry *entities.ResourceEntry) error {
	record := goqu.Record{
		"id":            entry.ID,
		"user_id":       entry.UserID,
		"resource_type": entry.ResourceType,
		"amount":        entry.Amount,
		"unit":          entry.Unit,
		"credits":       entry.Credits,
		"date":          entry.Date,
	}

	query, args, err := a.db.Insert("resource_entries").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build resource entry insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create resource entry", err)
	}

	return nil
}

// ListByUser returns the user's resource entries newest first
func (a *ResourceAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.ResourceEntry, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "resource_type", "amount", "unit", "credits", "date",
	).From("resource_entries").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("date").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build resource entry list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list resource entries", err)
	}
	defer rows.Close()

	var entries []*entities.ResourceEntry
	for rows.Next() {
		entry := &entities.ResourceEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ResourceType,
			&entry.Amount,
			&entry.Unit,
			&entry.Credits,
			&entry.Date,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan resource entry", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
