package handlers

import (
	"net/http"
	"strconv"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
)

// WeatherHandler proxies current conditions lookups.
type WeatherHandler struct {
	provider providers.WeatherProvider
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(provider providers.WeatherProvider) *WeatherHandler {
	return &WeatherHandler{provider: provider}
}

// Get handles GET /api/weather
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	latitude, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "latitude is required and must be a number")
		return
	}
	longitude, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "longitude is required and must be a number")
		return
	}

	weather, err := h.provider.CurrentConditions(r.Context(), latitude, longitude)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "weather data is currently unavailable")
		return
	}

	respondWithJSON(w, http.StatusOK, weather)
}
