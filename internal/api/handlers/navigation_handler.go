package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// NavigationOperations defines the navigation operations used by the handler.
type NavigationOperations interface {
	GetDirections(ctx context.Context, origin, destination, travelMode string) (*services.DirectionsResult, error)
	LogRoute(ctx context.Context, userID string, input services.RouteInput) (*entities.NavigationRoute, error)
	List(ctx context.Context, userID string) ([]*entities.NavigationRoute, error)
}

// NavigationHandler handles directions lookups and route logging.
type NavigationHandler struct {
	service NavigationOperations
}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler(service NavigationOperations) *NavigationHandler {
	return &NavigationHandler{service: service}
}

type directionsRequest struct {
	Start       string `json:"start"`
	Destination string `json:"destination"`
	TravelMode  string `json:"travelMode"`
}

// GetDirections handles POST /api/navigation/directions
func (h *NavigationHandler) GetDirections(w http.ResponseWriter, r *http.Request) {
	var payload directionsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.GetDirections(r.Context(), payload.Start, payload.Destination, payload.TravelMode)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// LogRoute handles POST /api/navigation
func (h *NavigationHandler) LogRoute(w http.ResponseWriter, r *http.Request) {
	var input services.RouteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	route, err := h.service.LogRoute(r.Context(), userIDFromRequest(r), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, route)
}

// List handles GET /api/navigation
func (h *NavigationHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.List(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if routes == nil {
		routes = []*entities.NavigationRoute{}
	}

	respondWithJSON(w, http.StatusOK, routes)
}
