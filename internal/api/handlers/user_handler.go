package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
)

// UserOperations defines the user operations used by the handler.
type UserOperations interface {
	Stats(ctx context.Context, userID string) (*entities.User, *entities.UserStats, error)
	UpdateProfile(ctx context.Context, userID string, update repositories.ProfileUpdate) (*entities.User, error)
	Leaderboard(ctx context.Context) ([]*entities.User, error)
}

// UserHandler handles user profile and stats endpoints.
type UserHandler struct {
	service UserOperations
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service UserOperations) *UserHandler {
	return &UserHandler{service: service}
}

// Stats handles GET /api/user/stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, stats, err := h.service.Stats(r.Context(), userIDFromRequest(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"stats": stats,
	})
}

type profileUpdateRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateProfile handles PATCH /api/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var payload profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userIDFromRequest(r), repositories.ProfileUpdate{
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// Leaderboard handles GET /api/leaderboard
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Leaderboard(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if users == nil {
		users = []*entities.User{}
	}

	respondWithJSON(w, http.StatusOK, users)
}
