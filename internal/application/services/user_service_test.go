package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

func newUserFixture() (*services.UserService, *MockUserRepository, *MockResourceRepository, *MockRouteRepository, *MockIssueRepository) {
	userRepo := new(MockUserRepository)
	resourceRepo := new(MockResourceRepository)
	routeRepo := new(MockRouteRepository)
	issueRepo := new(MockIssueRepository)
	service := services.NewUserService(userRepo, resourceRepo, routeRepo, issueRepo)
	return service, userRepo, resourceRepo, routeRepo, issueRepo
}

func TestUserService_EnsureDemoUser(t *testing.T) {
	t.Run("creates the demo user when missing", func(t *testing.T) {
		service, userRepo, _, _, _ := newUserFixture()

		userRepo.On("GetByID", mock.Anything, services.DemoUserID).
			Return(nil, apperrors.NewNotFoundError("not found"))
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.ID == services.DemoUserID && u.Level == 1 && u.EcoPoints == 0
		})).Return(nil)

		err := service.EnsureDemoUser(context.Background())

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("is a no-op when the demo user exists", func(t *testing.T) {
		service, userRepo, _, _, _ := newUserFixture()

		userRepo.On("GetByID", mock.Anything, services.DemoUserID).
			Return(&entities.User{ID: services.DemoUserID}, nil)

		err := service.EnsureDemoUser(context.Background())

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestUserService_Stats(t *testing.T) {
	t.Run("counts activity and clamps carbon saved at zero", func(t *testing.T) {
		service, userRepo, resourceRepo, routeRepo, issueRepo := newUserFixture()

		userRepo.On("GetByID", mock.Anything, "user-1").
			Return(&entities.User{ID: "user-1", EcoPoints: 100, Level: 1}, nil)
		resourceRepo.On("ListByUser", mock.Anything, "user-1").
			Return([]*entities.ResourceEntry{{ID: "r1"}, {ID: "r2"}}, nil)
		routeRepo.On("ListByUser", mock.Anything, "user-1").
			Return([]*entities.NavigationRoute{
				{CarbonEmission: 0.5},
				{CarbonEmission: 2.0},
			}, nil)
		issueRepo.On("ListByUser", mock.Anything, "user-1").
			Return([]*entities.EnvironmentalIssue{{ID: "i1"}}, nil)

		user, stats, err := service.Stats(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, 100, user.EcoPoints)
		assert.Equal(t, 2, stats.TotalResources)
		assert.Equal(t, 2, stats.TotalRoutes)
		assert.Equal(t, 1, stats.TotalIssues)
		// (10 - 0.5) + (10 - 2.0)
		assert.Equal(t, 17.5, stats.CarbonSaved)
	})

	t.Run("never reports negative carbon saved", func(t *testing.T) {
		service, userRepo, resourceRepo, routeRepo, issueRepo := newUserFixture()

		userRepo.On("GetByID", mock.Anything, "user-1").Return(&entities.User{ID: "user-1"}, nil)
		resourceRepo.On("ListByUser", mock.Anything, "user-1").Return([]*entities.ResourceEntry{}, nil)
		routeRepo.On("ListByUser", mock.Anything, "user-1").
			Return([]*entities.NavigationRoute{{CarbonEmission: 50}}, nil)
		issueRepo.On("ListByUser", mock.Anything, "user-1").Return([]*entities.EnvironmentalIssue{}, nil)

		_, stats, err := service.Stats(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, 0.0, stats.CarbonSaved)
	})

	t.Run("propagates not found for a missing user", func(t *testing.T) {
		service, userRepo, _, _, _ := newUserFixture()

		userRepo.On("GetByID", mock.Anything, "ghost").
			Return(nil, apperrors.NewNotFoundError("not found"))

		_, _, err := service.Stats(context.Background(), "ghost")

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("applies a valid update", func(t *testing.T) {
		service, userRepo, _, _, _ := newUserFixture()

		update := repositories.ProfileUpdate{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
		userRepo.On("UpdateProfile", mock.Anything, "user-1", update).
			Return(&entities.User{ID: "user-1", Email: "ada@example.com"}, nil)

		user, err := service.UpdateProfile(context.Background(), "user-1", update)

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("rejects invalid emails and blank names", func(t *testing.T) {
		service, userRepo, _, _, _ := newUserFixture()

		cases := []repositories.ProfileUpdate{
			{Email: "not-an-email", FirstName: "Ada", LastName: "Lovelace"},
			{Email: "", FirstName: "Ada", LastName: "Lovelace"},
			{Email: "ada@example.com", FirstName: "", LastName: "Lovelace"},
			{Email: "ada@example.com", FirstName: "Ada", LastName: "  "},
		}
		for _, update := range cases {
			_, err := service.UpdateProfile(context.Background(), "user-1", update)
			assert.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		}
		userRepo.AssertNotCalled(t, "UpdateProfile")
	})
}

func TestUserService_Leaderboard(t *testing.T) {
	t.Run("returns top users by eco points", func(t *testing.T) {
		service, userRepo, _, _, _ := newUserFixture()

		userRepo.On("Top", mock.Anything, 10).Return([]*entities.User{
			{ID: "a", EcoPoints: 900},
			{ID: "b", EcoPoints: 400},
		}, nil)

		users, err := service.Leaderboard(context.Background())

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "a", users[0].ID)
	})
}
