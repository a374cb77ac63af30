package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

func newNavigationFixture(directions *MockDirectionsProvider) (*services.NavigationService, *MockRouteRepository, *MockUserRepository) {
	repo := new(MockRouteRepository)
	userRepo := new(MockUserRepository)
	creditSvc := services.NewCreditService(userRepo)
	analytics := newAnalyticsService(new(MockResourceRepository), new(MockRouteRepository), new(MockWasteRepository), new(MockIrrigationRepository))
	service := services.NewNavigationService(repo, directions, creditSvc, analytics)
	return service, repo, userRepo
}

func TestNavigationService_LogRoute(t *testing.T) {
	t.Run("carpool trip earns mode credits and emission against flat baseline", func(t *testing.T) {
		// Arrange
		service, repo, userRepo := newNavigationFixture(new(MockDirectionsProvider))

		repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.NavigationRoute) bool {
			return r.TransportMode == "carpool" && r.CarbonEmission == 0.6 && r.Credits == 10
		})).Return(nil)
		userRepo.On("IncrementPoints", mock.Anything, "user-1", 10).
			Return(&entities.User{ID: "user-1", EcoPoints: 10, Level: 1}, nil)

		// Act
		route, err := service.LogRoute(context.Background(), "user-1", services.RouteInput{
			StartLocation: "Home",
			EndLocation:   "Office",
			TransportMode: "carpool",
			Distance:      10,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0.6, route.CarbonEmission)
		assert.Equal(t, 10, route.Credits)
		repo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown transport mode defaults to car", func(t *testing.T) {
		service, repo, userRepo := newNavigationFixture(new(MockDirectionsProvider))

		repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.NavigationRoute) bool {
			return r.TransportMode == "car" && r.CarbonEmission == 2.0 && r.Credits == 2
		})).Return(nil)
		userRepo.On("IncrementPoints", mock.Anything, "user-1", 2).
			Return(&entities.User{ID: "user-1"}, nil)

		route, err := service.LogRoute(context.Background(), "user-1", services.RouteInput{
			StartLocation: "Home",
			EndLocation:   "Office",
			TransportMode: "hoverboard",
			Distance:      10,
		})

		assert.NoError(t, err)
		assert.Equal(t, "car", route.TransportMode)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing locations", func(t *testing.T) {
		service, repo, _ := newNavigationFixture(new(MockDirectionsProvider))

		_, err := service.LogRoute(context.Background(), "user-1", services.RouteInput{
			TransportMode: "walk",
			Distance:      2,
		})

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "Create")
	})
}

func TestNavigationService_GetDirections(t *testing.T) {
	t.Run("attaches the per-distance emission estimate", func(t *testing.T) {
		directions := new(MockDirectionsProvider)
		directions.On("GetDirections", mock.Anything, "Home", "Office", "TRANSIT").
			Return(&providers.Directions{
				Polyline:        "poly",
				DistanceMeters:  10000,
				DurationSeconds: 1800,
			}, nil)

		service, _, _ := newNavigationFixture(directions)

		result, err := service.GetDirections(context.Background(), "Home", "Office", "TRANSIT")

		assert.NoError(t, err)
		// 10 km of transit at 50 g/km.
		assert.Equal(t, 500.0, result.CarbonEmission)
		assert.Equal(t, "poly", result.Polyline)
	})

	t.Run("unknown travel mode estimates as driving", func(t *testing.T) {
		directions := new(MockDirectionsProvider)
		directions.On("GetDirections", mock.Anything, "Home", "Office", "DRIVING").
			Return(&providers.Directions{DistanceMeters: 10000}, nil)

		service, _, _ := newNavigationFixture(directions)

		result, err := service.GetDirections(context.Background(), "Home", "Office", "TELEPORT")

		assert.NoError(t, err)
		assert.Equal(t, 1200.0, result.CarbonEmission)
		directions.AssertExpectations(t)
	})

	t.Run("maps provider failures to external errors", func(t *testing.T) {
		directions := new(MockDirectionsProvider)
		directions.On("GetDirections", mock.Anything, "Home", "Office", "DRIVING").
			Return(nil, errors.New("quota exceeded"))

		service, _, _ := newNavigationFixture(directions)

		_, err := service.GetDirections(context.Background(), "Home", "Office", "DRIVING")

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
	})

	t.Run("rejects blank parameters", func(t *testing.T) {
		service, _, _ := newNavigationFixture(new(MockDirectionsProvider))

		_, err := service.GetDirections(context.Background(), "", "Office", "DRIVING")

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}
