package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// WasteOperations defines the waste operations used by the handler.
type WasteOperations interface {
	Classify(ctx context.Context, userID, imageData string) (*services.ClassifyResult, error)
	List(ctx context.Context, userID string) ([]*entities.WasteClassification, error)
}

// WasteHandler handles waste classification endpoints.
type WasteHandler struct {
	service WasteOperations
}

// NewWasteHandler creates a new waste handler.
func NewWasteHandler(service WasteOperations) *WasteHandler {
	return &WasteHandler{service: service}
}

type classifyRequest struct {
	ImageData string `json:"imageData"`
}

// Classify handles POST /api/waste/classify
func (h *WasteHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var payload classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.Classify(r.Context(), userIDFromRequest(r), payload.ImageData)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// List handles GET /api/waste
func (h *WasteHandler) List(w http.ResponseWriter, r *http.Request) {
	classifications, err := h.service.List(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if classifications == nil {
		classifications = []*entities.WasteClassification{}
	}

	respondWithJSON(w, http.StatusOK, classifications)
}
