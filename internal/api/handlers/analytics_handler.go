package handlers

import (
	"context"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// AnalyticsOperations defines the analytics operations used by the handler.
type AnalyticsOperations interface {
	Build(ctx context.Context, userID string) (*entities.AnalyticsReport, error)
}

// AnalyticsHandler serves the reporting payload.
type AnalyticsHandler struct {
	service AnalyticsOperations
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service AnalyticsOperations) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Get handles GET /api/analytics
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Build(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
