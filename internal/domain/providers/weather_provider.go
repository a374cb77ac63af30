package providers

import (
	"context"
)

// Weather is the current conditions snapshot used by the irrigation
// assistant and the weather endpoint.
type Weather struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"windSpeed"`
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon"`
	Description   string  `json:"description"`
}

// WeatherProvider fetches current conditions for a coordinate.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, latitude, longitude float64) (*Weather, error)
}
