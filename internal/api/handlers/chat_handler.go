package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// ChatOperations defines the chat operations used by the handler.
type ChatOperations interface {
	Respond(ctx context.Context, message string) (string, error)
}

// ChatHandler handles the sustainability copilot endpoint.
type ChatHandler struct {
	service ChatOperations
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service ChatOperations) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	response, err := h.service.Respond(r.Context(), payload.Message)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"response": response,
	})
}
