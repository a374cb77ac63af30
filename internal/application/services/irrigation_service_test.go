package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

func newIrrigationFixture(ai *MockAIProvider) (*services.IrrigationService, *MockIrrigationRepository) {
	repo := new(MockIrrigationRepository)
	analytics := newAnalyticsService(new(MockResourceRepository), new(MockRouteRepository), new(MockWasteRepository), new(MockIrrigationRepository))
	service := services.NewIrrigationService(repo, ai, analytics)
	return service, repo
}

func TestIrrigationService_Create(t *testing.T) {
	t.Run("parses the recommended water amount", func(t *testing.T) {
		// Arrange
		ai := new(MockAIProvider)
		ai.On("GenerateText", mock.Anything, mock.Anything).
			Return("Water in the early morning with 35 liters per session, twice a week.", nil)

		service, repo := newIrrigationFixture(ai)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entities.IrrigationSchedule) bool {
			return s.WaterAmount == 35 && s.CropType == "tomato"
		})).Return(nil)

		// Act
		schedule, err := service.Create(context.Background(), "user-1", services.IrrigationInput{
			CropType:     "tomato",
			Location:     "Pune",
			SoilMoisture: entities.SoilMoistureDry,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 35.0, schedule.WaterAmount)
		repo.AssertExpectations(t)
	})

	t.Run("includes weather context in the prompt when provided", func(t *testing.T) {
		ai := new(MockAIProvider)
		ai.On("GenerateText", mock.Anything, mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "Current Weather") &&
				strings.Contains(prompt, "Rain") &&
				strings.Contains(prompt, "tomato")
		})).Return("Rain detected - skip watering today. Use 0 liters.", nil)

		service, repo := newIrrigationFixture(ai)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		schedule, err := service.Create(context.Background(), "user-1", services.IrrigationInput{
			CropType:     "tomato",
			Location:     "Pune",
			SoilMoisture: entities.SoilMoistureWet,
			Weather: &providers.Weather{
				Temperature:   22,
				Humidity:      90,
				Precipitation: 5,
				Condition:     "Rain",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0.0, schedule.WaterAmount)
	})

	t.Run("degrades to defaults when the AI fails", func(t *testing.T) {
		ai := new(MockAIProvider)
		ai.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("upstream down"))

		service, repo := newIrrigationFixture(ai)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entities.IrrigationSchedule) bool {
			return s.Recommendation == "Unable to generate recommendations" && s.WaterAmount == 50
		})).Return(nil)

		schedule, err := service.Create(context.Background(), "user-1", services.IrrigationInput{
			CropType:     "wheat",
			Location:     "Nashik",
			SoilMoisture: entities.SoilMoistureMoist,
		})

		assert.NoError(t, err)
		assert.Equal(t, 50.0, schedule.WaterAmount)
		repo.AssertExpectations(t)
	})

	t.Run("rejects incomplete requests", func(t *testing.T) {
		service, repo := newIrrigationFixture(new(MockAIProvider))

		_, err := service.Create(context.Background(), "user-1", services.IrrigationInput{
			CropType: "wheat",
		})

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "Create")
	})
}
