package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// IssueInput is a community issue report.
type IssueInput struct {
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// IssueService handles community issue reports and their lifecycle.
type IssueService struct {
	repo      repositories.EnvironmentalIssueRepository
	creditSvc *CreditService
	analytics *AnalyticsService
}

// NewIssueService creates a new issue service.
func NewIssueService(
	repo repositories.EnvironmentalIssueRepository,
	creditSvc *CreditService,
	analytics *AnalyticsService,
) *IssueService {
	return &IssueService{
		repo:      repo,
		creditSvc: creditSvc,
		analytics: analytics,
	}
}

// Report persists a new issue in pending state and awards the fixed
// reporting credits.
func (s *IssueService) Report(ctx context.Context, userID string, input IssueInput) (*entities.EnvironmentalIssue, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, apperrors.NewValidationError("category is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, apperrors.NewValidationError("location is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description is required")
	}

	issue := &entities.EnvironmentalIssue{
		ID:          uuid.New().String(),
		UserID:      userID,
		Category:    input.Category,
		Location:    input.Location,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Status:      entities.IssueStatusPending,
		Credits:     credits.PerIssueReport,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, issue); err != nil {
		return nil, err
	}

	if _, err := s.creditSvc.Award(ctx, userID, issue.Credits); err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx, userID)

	return issue, nil
}

// ListByUser returns the user's issues newest first.
func (s *IssueService) ListByUser(ctx context.Context, userID string) ([]*entities.EnvironmentalIssue, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListAll returns every reported issue for the community view.
func (s *IssueService) ListAll(ctx context.Context) ([]*entities.EnvironmentalIssue, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus moves an issue to a new lifecycle state.
func (s *IssueService) UpdateStatus(ctx context.Context, id, status string) (*entities.EnvironmentalIssue, error) {
	if !entities.ValidIssueStatus(status) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", status))
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
