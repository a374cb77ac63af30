package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// Helper functions shared by the handlers.

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps typed application errors to HTTP
// statuses. Internal details stay in the logs, not the response.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Msg("unclassified error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, appErr.Message)
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, appErr.Message)
	case apperrors.ErrorTypeExternal:
		log.Warn().Err(appErr).Msg("upstream provider failure")
		respondWithError(w, http.StatusBadGateway, appErr.Message)
	default:
		log.Error().Err(appErr).Msg("internal error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// userIDFromRequest resolves the acting user. Auth is out of scope; a
// caller may identify itself via the X-User-ID header, everything else
// acts as the demo user.
func userIDFromRequest(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-User-ID")); id != "" {
		return id
	}
	return services.DemoUserID
}
