package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

var issueColumns = []interface{}{
	"id", "user_id", "category", "location", "description",
	"image_url", "status", "credits", "created_at",
}

// IssueAdapter implements the EnvironmentalIssueRepository interface
type IssueAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewIssueAdapter creates a new environmental issue adapter
func NewIssueAdapter(client *postgres.Client) repositories.EnvironmentalIssueRepository {
	return &IssueAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts an environmental issue
func (a *IssueAdapter) Create(ctx context.Context, issue *entities.EnvironmentalIssue) error {
	var imageURL sql.NullString
	if issue.ImageURL != nil {
		imageURL = sql.NullString{String: *issue.ImageURL, Valid: true}
	}

	record := goqu.Record{
		"id":          issue.ID,
		"user_id":     issue.UserID,
		"category":    issue.Category,
		"location":    issue.Location,
		"description": issue.Description,
		"image_url":   imageURL,
		"status":      issue.Status,
		"credits":     issue.Credits,
		"created_at":  issue.CreatedAt,
	}

	query, args, err := a.db.Insert("environmental_issues").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build issue insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create issue", err)
	}

	return nil
}

// ListByUser returns the user's issues newest first
func (a *IssueAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.EnvironmentalIssue, error) {
	ds := a.db.Select(issueColumns...).
		From("environmental_issues").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc())

	return a.queryIssues(ctx, ds)
}

// ListAll returns every issue newest first
func (a *IssueAdapter) ListAll(ctx context.Context) ([]*entities.EnvironmentalIssue, error) {
	ds := a.db.Select(issueColumns...).
		From("environmental_issues").
		Order(goqu.I("created_at").Desc())

	return a.queryIssues(ctx, ds)
}

// UpdateStatus moves an issue through its lifecycle
func (a *IssueAdapter) UpdateStatus(ctx context.Context, id, status string) (*entities.EnvironmentalIssue, error) {
	query, args, err := a.db.Update("environmental_issues").
		Set(goqu.Record{"status": status}).
		Where(goqu.Ex{"id": id}).
		Returning(issueColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build status update query", err)
	}

	issue, err := scanIssue(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("issue with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update issue status", err)
	}

	return issue, nil
}

func (a *IssueAdapter) queryIssues(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.EnvironmentalIssue, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build issue list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list issues", err)
	}
	defer rows.Close()

	var issues []*entities.EnvironmentalIssue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan issue", err)
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

func scanIssue(row rowScanner) (*entities.EnvironmentalIssue, error) {
	issue := &entities.EnvironmentalIssue{}
	var imageURL sql.NullString
	err := row.Scan(
		&issue.ID,
		&issue.UserID,
		&issue.Category,
		&issue.Location,
		&issue.Description,
		&imageURL,
		&issue.Status,
		&issue.Credits,
		&issue.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		issue.ImageURL = &imageURL.String
	}
	return issue, nil
}
