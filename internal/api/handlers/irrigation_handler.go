package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// IrrigationOperations defines the irrigation operations used by the handler.
type IrrigationOperations interface {
	Create(ctx context.Context, userID string, input services.IrrigationInput) (*entities.IrrigationSchedule, error)
	List(ctx context.Context, userID string) ([]*entities.IrrigationSchedule, error)
}

// IrrigationHandler handles irrigation schedule endpoints.
type IrrigationHandler struct {
	service IrrigationOperations
}

// NewIrrigationHandler creates a new irrigation handler.
func NewIrrigationHandler(service IrrigationOperations) *IrrigationHandler {
	return &IrrigationHandler{service: service}
}

// Create handles POST /api/irrigation
func (h *IrrigationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.IrrigationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	schedule, err := h.service.Create(r.Context(), userIDFromRequest(r), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, schedule)
}

// List handles GET /api/irrigation
func (h *IrrigationHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.List(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if schedules == nil {
		schedules = []*entities.IrrigationSchedule{}
	}

	respondWithJSON(w, http.StatusOK, schedules)
}
