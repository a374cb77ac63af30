package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

func newIssueFixture() (*services.IssueService, *MockIssueRepository, *MockUserRepository) {
	repo := new(MockIssueRepository)
	userRepo := new(MockUserRepository)
	creditSvc := services.NewCreditService(userRepo)
	analytics := newAnalyticsService(new(MockResourceRepository), new(MockRouteRepository), new(MockWasteRepository), new(MockIrrigationRepository))
	service := services.NewIssueService(repo, creditSvc, analytics)
	return service, repo, userRepo
}

func TestIssueService_Report(t *testing.T) {
	t.Run("creates a pending issue worth fixed credits", func(t *testing.T) {
		// Arrange
		service, repo, userRepo := newIssueFixture()

		repo.On("Create", mock.Anything, mock.MatchedBy(func(i *entities.EnvironmentalIssue) bool {
			return i.Status == entities.IssueStatusPending && i.Credits == 10 && i.ID != ""
		})).Return(nil)
		userRepo.On("IncrementPoints", mock.Anything, "user-1", 10).
			Return(&entities.User{ID: "user-1", EcoPoints: 10, Level: 1}, nil)

		// Act
		issue, err := service.Report(context.Background(), "user-1", services.IssueInput{
			Category:    "waste-dumping",
			Location:    "Riverside Park",
			Description: "Illegal dumping near the footbridge",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entities.IssueStatusPending, issue.Status)
		assert.Equal(t, 10, issue.Credits)
		repo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects incomplete reports", func(t *testing.T) {
		service, repo, _ := newIssueFixture()

		_, err := service.Report(context.Background(), "user-1", services.IssueInput{
			Category: "noise",
		})

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "Create")
	})
}

func TestIssueService_UpdateStatus(t *testing.T) {
	t.Run("moves an issue to a valid state", func(t *testing.T) {
		service, repo, _ := newIssueFixture()

		repo.On("UpdateStatus", mock.Anything, "issue-1", entities.IssueStatusResolved).
			Return(&entities.EnvironmentalIssue{ID: "issue-1", Status: entities.IssueStatusResolved}, nil)

		issue, err := service.UpdateStatus(context.Background(), "issue-1", entities.IssueStatusResolved)

		assert.NoError(t, err)
		assert.Equal(t, entities.IssueStatusResolved, issue.Status)
	})

	t.Run("rejects unknown states", func(t *testing.T) {
		service, repo, _ := newIssueFixture()

		_, err := service.UpdateStatus(context.Background(), "issue-1", "archived")

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("propagates not found from the repository", func(t *testing.T) {
		service, repo, _ := newIssueFixture()

		repo.On("UpdateStatus", mock.Anything, "ghost", entities.IssueStatusResolved).
			Return(nil, apperrors.NewNotFoundError("issue with id ghost not found"))

		_, err := service.UpdateStatus(context.Background(), "ghost", entities.IssueStatusResolved)

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}
