package entities

import (
	"encoding/json"
	"time"
)

// Soil moisture readings accepted on an irrigation request.
const (
	SoilMoistureDry   = "dry"
	SoilMoistureMoist = "moist"
	SoilMoistureWet   = "wet"
)

// IrrigationSchedule stores an AI-generated watering recommendation.
// WeatherForecast is the forecast blob the recommendation was based on,
// stored opaquely.
type IrrigationSchedule struct {
	ID              string          `json:"id" db:"id"`
	UserID          string          `json:"userId" db:"user_id"`
	CropType        string          `json:"cropType" db:"crop_type"`
	Location        string          `json:"location" db:"location"`
	SoilMoisture    string          `json:"soilMoisture" db:"soil_moisture"`
	WeatherForecast json.RawMessage `json:"weatherForecast" db:"weather_forecast"`
	Recommendation  string          `json:"recommendation" db:"recommendation"`
	WaterAmount     float64         `json:"waterAmount" db:"water_amount"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}
