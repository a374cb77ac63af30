package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// ResourceOperations defines the resource operations used by the handler.
type ResourceOperations interface {
	Log(ctx context.Context, userID string, input services.ResourceInput) (*services.ResourceResult, error)
	List(ctx context.Context, userID string) ([]*entities.ResourceEntry, error)
}

// ResourceHandler handles resource entry endpoints.
type ResourceHandler struct {
	service ResourceOperations
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(service ResourceOperations) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// Create handles POST /api/resources
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ResourceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.Log(r.Context(), userIDFromRequest(r), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// List handles GET /api/resources
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []*entities.ResourceEntry{}
	}

	respondWithJSON(w, http.StatusOK, entries)
}
