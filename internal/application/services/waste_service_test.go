package services_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

func newWasteFixture(ai *MockAIProvider) (*services.WasteService, *MockWasteRepository, *MockUserRepository) {
	repo := new(MockWasteRepository)
	userRepo := new(MockUserRepository)
	creditSvc := services.NewCreditService(userRepo)
	analytics := newAnalyticsService(new(MockResourceRepository), new(MockRouteRepository), new(MockWasteRepository), new(MockIrrigationRepository))
	service := services.NewWasteService(repo, ai, creditSvc, analytics)
	return service, repo, userRepo
}

func testImageURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))
}

func TestWasteService_Classify(t *testing.T) {
	t.Run("parses the structured answer and awards credits", func(t *testing.T) {
		// Arrange
		ai := new(MockAIProvider)
		ai.On("ClassifyImage", mock.Anything, mock.Anything, "image/png", []byte("fake-image-bytes")).
			Return("Category: Plastic Water Bottle\nRecyclable: yes\nConfidence: 92%\nSuggestion: Rinse and recycle.\n", nil)

		service, repo, userRepo := newWasteFixture(ai)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entities.WasteClassification) bool {
			return c.Category == "Plastic Water Bottle" && c.Recyclable == 1 &&
				c.Confidence == 92 && c.Suggestion == "Rinse and recycle."
		})).Return(nil)
		userRepo.On("IncrementPoints", mock.Anything, "user-1", 5).
			Return(&entities.User{ID: "user-1", EcoPoints: 5, Level: 1}, nil)

		// Act
		result, err := service.Classify(context.Background(), "user-1", testImageURI())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Plastic Water Bottle", result.Classification.Category)
		assert.Contains(t, result.FullAnalysis, "Recyclable: yes")
		repo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("falls back per field when the answer is unstructured", func(t *testing.T) {
		ai := new(MockAIProvider)
		ai.On("ClassifyImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("I could not identify the item in this photograph.", nil)

		service, repo, userRepo := newWasteFixture(ai)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entities.WasteClassification) bool {
			return c.Category == "Unknown Item" && c.Recyclable == 0 &&
				c.Confidence == 75 && c.Suggestion == "Please dispose of this item in the appropriate waste bin."
		})).Return(nil)
		userRepo.On("IncrementPoints", mock.Anything, "user-1", 5).
			Return(&entities.User{ID: "user-1"}, nil)

		_, err := service.Classify(context.Background(), "user-1", testImageURI())

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("surfaces AI failures instead of storing a guess", func(t *testing.T) {
		ai := new(MockAIProvider)
		ai.On("ClassifyImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", apperrors.NewExternalError("model unavailable", errors.New("503")))

		service, repo, _ := newWasteFixture(ai)

		_, err := service.Classify(context.Background(), "user-1", testImageURI())

		assert.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects malformed data URIs", func(t *testing.T) {
		service, repo, _ := newWasteFixture(new(MockAIProvider))

		for _, uri := range []string{"", "not-a-uri", "data:image/png;base64,!!!", "data:image/png;base64"} {
			_, err := service.Classify(context.Background(), "user-1", uri)
			assert.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		}
		repo.AssertNotCalled(t, "Create")
	})
}
