package services

import (
	"context"
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

const classifyPrompt = `Analyze this waste item image carefully and provide a detailed classification.

IMPORTANT: Look at the actual item in the image and identify what it is specifically.

Respond in this exact format:
Category: [specific item name like "Plastic Water Bottle", "Cardboard Box", "Aluminum Can", "Food Waste", "Paper", "Glass Bottle", etc.]
Recyclable: [yes or no]
Confidence: [number from 0-100]%
Suggestion: [specific disposal or recycling instructions for this item]

Be specific about the category - identify the actual item type, not just "waste" or "unknown".`

// Parse defaults when the model's answer misses a field.
const (
	defaultCategory   = "Unknown Item"
	defaultConfidence = 75
	defaultSuggestion = "Please dispose of this item in the appropriate waste bin."
)

var (
	categoryRe   = regexp.MustCompile(`(?i)Category:\s*([^\n,]+)`)
	recyclableRe = regexp.MustCompile(`(?i)Recyclable:\s*(yes|no)`)
	confidenceRe = regexp.MustCompile(`Confidence:\s*(\d+)`)
	suggestionRe = regexp.MustCompile(`(?i)Suggestion:\s*(.+)`)
)

// ClassifyResult is the stored classification plus the model's raw
// analysis text for display.
type ClassifyResult struct {
	Classification *entities.WasteClassification `json:"classification"`
	FullAnalysis   string                        `json:"fullAnalysis"`
}

// WasteService classifies waste photos through the AI vision model and
// keeps the per-user history.
type WasteService struct {
	repo      repositories.WasteClassificationRepository
	ai        providers.AIProvider
	creditSvc *CreditService
	analytics *AnalyticsService
}

// NewWasteService creates a new waste service.
func NewWasteService(
	repo repositories.WasteClassificationRepository,
	ai providers.AIProvider,
	creditSvc *CreditService,
	analytics *AnalyticsService,
) *WasteService {
	return &WasteService{
		repo:      repo,
		ai:        ai,
		creditSvc: creditSvc,
		analytics: analytics,
	}
}

// Classify runs the vision model over a base64 data URI, parses the
// structured answer and persists it. Unlike text suggestions there is
// no useful degraded result here, so AI failures surface as external
// errors.
func (s *WasteService) Classify(ctx context.Context, userID, imageData string) (*ClassifyResult, error) {
	mimeType, raw, err := decodeDataURI(imageData)
	if err != nil {
		return nil, err
	}

	analysis, err := s.ai.ClassifyImage(ctx, classifyPrompt, mimeType, raw)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("analysis", analysis).Msg("vision classification response")

	classification := parseClassification(analysis)
	classification.ID = uuid.New().String()
	classification.UserID = userID
	classification.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, classification); err != nil {
		return nil, err
	}

	if _, err := s.creditSvc.Award(ctx, userID, credits.PerWasteClassification); err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx, userID)

	return &ClassifyResult{
		Classification: classification,
		FullAnalysis:   analysis,
	}, nil
}

// List returns the user's classifications newest first.
func (s *WasteService) List(ctx context.Context, userID string) ([]*entities.WasteClassification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" string into its
// MIME type and decoded bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, apperrors.NewValidationError("imageData must be a base64 data URI")
	}

	head, payload, found := strings.Cut(uri, ",")
	if !found || payload == "" {
		return "", nil, apperrors.NewValidationError("imageData is missing its base64 payload")
	}

	mimeType := strings.TrimPrefix(head, "data:")
	mimeType = strings.TrimSuffix(mimeType, ";base64")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, apperrors.NewValidationError("imageData payload is not valid base64")
	}

	return mimeType, raw, nil
}

// parseClassification extracts the structured fields from the model's
// free-text answer, falling back to safe defaults per field.
func parseClassification(analysis string) *entities.WasteClassification {
	classification := &entities.WasteClassification{
		Category:   defaultCategory,
		Recyclable: 0,
		Confidence: defaultConfidence,
		Suggestion: defaultSuggestion,
	}

	if m := categoryRe.FindStringSubmatch(analysis); m != nil {
		classification.Category = strings.TrimSpace(m[1])
	}
	if m := recyclableRe.FindStringSubmatch(analysis); m != nil {
		if strings.EqualFold(m[1], "yes") {
			classification.Recyclable = 1
		}
	}
	if m := confidenceRe.FindStringSubmatch(analysis); m != nil {
		if confidence, err := strconv.Atoi(m[1]); err == nil {
			classification.Confidence = float64(confidence)
		}
	}
	if m := suggestionRe.FindStringSubmatch(analysis); m != nil {
		// The suggestion runs to the end of its line only.
		line, _, _ := strings.Cut(m[1], "\n")
		classification.Suggestion = strings.TrimSpace(line)
	}

	return classification
}
