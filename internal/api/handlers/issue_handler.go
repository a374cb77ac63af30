package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// IssueOperations defines the issue operations used by the handler.
type IssueOperations interface {
	Report(ctx context.Context, userID string, input services.IssueInput) (*entities.EnvironmentalIssue, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.EnvironmentalIssue, error)
	ListAll(ctx context.Context) ([]*entities.EnvironmentalIssue, error)
	UpdateStatus(ctx context.Context, id, status string) (*entities.EnvironmentalIssue, error)
}

// IssueHandler handles community issue endpoints.
type IssueHandler struct {
	service IssueOperations
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(service IssueOperations) *IssueHandler {
	return &IssueHandler{service: service}
}

// Create handles POST /api/issues
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.IssueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	issue, err := h.service.Report(r.Context(), userIDFromRequest(r), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, issue)
}

// List handles GET /api/issues
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	issues, err := h.service.ListByUser(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if issues == nil {
		issues = []*entities.EnvironmentalIssue{}
	}

	respondWithJSON(w, http.StatusOK, issues)
}

// ListAll handles GET /api/issues/all
func (h *IssueHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	issues, err := h.service.ListAll(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if issues == nil {
		issues = []*entities.EnvironmentalIssue{}
	}

	respondWithJSON(w, http.StatusOK, issues)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/issues/{id}/status
func (h *IssueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	issue, err := h.service.UpdateStatus(r.Context(), r.PathValue("id"), payload.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, issue)
}
