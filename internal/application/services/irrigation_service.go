package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

const (
	defaultWaterLiters        = 50.0
	recommendationUnavailable = "Unable to generate recommendations"
	defaultForecastJSON       = `{"temperature":25,"humidity":60,"precipitation":0}`
)

var waterAmountRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:liters|L)`)

// IrrigationInput is a watering advice request. Weather is optional;
// when present the prompt becomes weather-aware.
type IrrigationInput struct {
	CropType     string             `json:"cropType"`
	Location     string             `json:"location"`
	SoilMoisture string             `json:"soilMoisture"`
	Weather      *providers.Weather `json:"weatherData"`
}

// IrrigationService generates and stores AI watering recommendations.
type IrrigationService struct {
	repo      repositories.IrrigationScheduleRepository
	ai        providers.AIProvider
	analytics *AnalyticsService
}

// NewIrrigationService creates a new irrigation service.
func NewIrrigationService(
	repo repositories.IrrigationScheduleRepository,
	ai providers.AIProvider,
	analytics *AnalyticsService,
) *IrrigationService {
	return &IrrigationService{
		repo:      repo,
		ai:        ai,
		analytics: analytics,
	}
}

// Create builds a weather-aware prompt, asks the AI for a schedule,
// parses the recommended water amount and persists the result. AI
// failure degrades to a stock recommendation with the default amount.
func (s *IrrigationService) Create(ctx context.Context, userID string, input IrrigationInput) (*entities.IrrigationSchedule, error) {
	if strings.TrimSpace(input.CropType) == "" {
		return nil, apperrors.NewValidationError("cropType is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, apperrors.NewValidationError("location is required")
	}
	if strings.TrimSpace(input.SoilMoisture) == "" {
		return nil, apperrors.NewValidationError("soilMoisture is required")
	}

	recommendation, err := s.ai.GenerateText(ctx, buildIrrigationPrompt(input))
	if err != nil || strings.TrimSpace(recommendation) == "" {
		log.Warn().Err(err).Msg("ai recommendation unavailable, using fallback")
		recommendation = recommendationUnavailable
	}

	waterAmount := defaultWaterLiters
	if m := waterAmountRe.FindStringSubmatch(recommendation); m != nil {
		if parsed, err := strconv.ParseFloat(m[1], 64); err == nil {
			waterAmount = parsed
		}
	}

	forecast := json.RawMessage(defaultForecastJSON)
	if input.Weather != nil {
		if data, err := json.Marshal(input.Weather); err == nil {
			forecast = data
		}
	}

	schedule := &entities.IrrigationSchedule{
		ID:              uuid.New().String(),
		UserID:          userID,
		CropType:        input.CropType,
		Location:        input.Location,
		SoilMoisture:    input.SoilMoisture,
		WeatherForecast: forecast,
		Recommendation:  recommendation,
		WaterAmount:     waterAmount,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx, userID)

	return schedule, nil
}

// List returns the user's schedules newest first.
func (s *IrrigationService) List(ctx context.Context, userID string) ([]*entities.IrrigationSchedule, error) {
	return s.repo.ListByUser(ctx, userID)
}

func buildIrrigationPrompt(input IrrigationInput) string {
	weatherContext := ""
	if input.Weather != nil {
		weatherContext = fmt.Sprintf(
			"Current Weather: Temperature %.1f°C, Humidity %.0f%%, Precipitation %.1fmm, Wind Speed %.1f km/h, Condition: %s. ",
			input.Weather.Temperature, input.Weather.Humidity, input.Weather.Precipitation,
			input.Weather.WindSpeed, input.Weather.Condition)
	}

	return fmt.Sprintf(`%sGenerate irrigation schedule for: Crop: %s, Location: %s, Soil Moisture: %s.

Based on the weather conditions, provide:
1) Should watering happen today? (Consider if rain is present or expected)
2) Recommended water amount in liters
3) Optimal watering times
4) Frequency
5) Specific weather-based advice (e.g., "Rain detected - skip watering", "Hot and dry - increase watering")

Be concise, practical, and weather-aware.`,
		weatherContext, input.CropType, input.Location, input.SoilMoisture)
}
