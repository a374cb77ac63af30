package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// WasteAdapter implements the WasteClassificationRepository interface
type WasteAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewWasteAdapter creates a new waste classification adapter
func NewWasteAdapter(client *postgres.Client) repositories.WasteClassificationRepository {
	return &WasteAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a waste classification
func (a *WasteAdapter) Create(ctx context.Context, classification *entities.WasteClassification) error {
	var imageURL sql.NullString
	if classification.ImageURL != nil {
		imageURL = sql.NullString{String: *classification.ImageURL, Valid: true}
	}

	record := goqu.Record{
		"id":         classification.ID,
		"user_id":    classification.UserID,
		"category":   classification.Category,
		"recyclable": classification.Recyclable,
		"confidence": classification.Confidence,
		"image_url":  imageURL,
		"suggestion": classification.Suggestion,
		"created_at": classification.CreatedAt,
	}

	query, args, err := a.db.Insert("waste_classifications").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build waste classification insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create waste classification", err)
	}

	return nil
}

// ListByUser returns the user's classifications newest first
func (a *WasteAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.WasteClassification, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "category", "recyclable", "confidence",
		"image_url", "suggestion", "created_at",
	).From("waste_classifications").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build waste classification list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list waste classifications", err)
	}
	defer rows.Close()

	var classifications []*entities.WasteClassification
	for rows.Next() {
		classification := &entities.WasteClassification{}
		var imageURL sql.NullString
		if err := rows.Scan(
			&classification.ID,
			&classification.UserID,
			&classification.Category,
			&classification.Recyclable,
			&classification.Confidence,
			&imageURL,
			&classification.Suggestion,
			&classification.CreatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan waste classification", err)
		}
		if imageURL.Valid {
			classification.ImageURL = &imageURL.String
		}
		classifications = append(classifications, classification)
	}

	return classifications, rows.Err()
}
