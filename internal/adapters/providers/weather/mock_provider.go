package weather

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
)

// MockWeatherProvider implements a mock weather provider for testing
type MockWeatherProvider struct{}

// NewMockWeatherProvider creates a new mock weather provider
func NewMockWeatherProvider() providers.WeatherProvider {
	return &MockWeatherProvider{}
}

// CurrentConditions returns a fixed mild forecast
func (m *MockWeatherProvider) CurrentConditions(ctx context.Context, latitude, longitude float64) (*providers.Weather, error) {
	return &providers.Weather{
		Temperature:   25,
		Humidity:      60,
		Precipitation: 0,
		WindSpeed:     10,
		Condition:     "Clear",
		Icon:          "Sun",
		Description:   "Clear",
	}, nil
}
