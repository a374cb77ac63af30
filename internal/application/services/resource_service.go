package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/ecorank"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

const suggestionsUnavailable = "Unable to generate AI suggestions at this time."

// ResourceInput is a consumption reading to log.
type ResourceInput struct {
	ResourceType string    `json:"resourceType"`
	Amount       float64   `json:"amount"`
	Unit         string    `json:"unit"`
	IndustrySize string    `json:"industrySize"`
	Date         time.Time `json:"date"`
}

// ResourceResult is the logged entry with its rating and AI advice.
type ResourceResult struct {
	Entry       *entities.ResourceEntry `json:"entry"`
	Rating      ecorank.Rating          `json:"rating"`
	Suggestions string                  `json:"suggestions"`
}

// ResourceService logs consumption readings: rate, persist, award
// credits, then ask the AI for improvement suggestions.
type ResourceService struct {
	repo      repositories.ResourceEntryRepository
	creditSvc *CreditService
	analytics *AnalyticsService
	ai        providers.AIProvider
	bonusSrc  credits.Source
}

// NewResourceService creates a new resource service.
func NewResourceService(
	repo repositories.ResourceEntryRepository,
	creditSvc *CreditService,
	analytics *AnalyticsService,
	ai providers.AIProvider,
	bonusSrc credits.Source,
) *ResourceService {
	return &ResourceService{
		repo:      repo,
		creditSvc: creditSvc,
		analytics: analytics,
		ai:        ai,
		bonusSrc:  bonusSrc,
	}
}

// Log rates and persists a reading, awards its credits and returns the
// rating together with AI suggestions. Suggestions degrade to a stock
// message when the AI provider fails; everything else still succeeds.
func (s *ResourceService) Log(ctx context.Context, userID string, input ResourceInput) (*ResourceResult, error) {
	if input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if strings.TrimSpace(input.Unit) == "" {
		return nil, apperrors.NewValidationError("unit is required")
	}

	resourceType, fellBack := ecorank.ResolveResourceType(input.ResourceType)
	if fellBack {
		log.Warn().Str("resource_type", input.ResourceType).Msg("unknown resource type, rating as electricity")
	}
	industrySize, fellBack := ecorank.ResolveIndustrySize(input.IndustrySize)
	if fellBack {
		log.Warn().Str("industry_size", input.IndustrySize).Msg("unknown industry size, rating as medium")
	}

	rating := ecorank.Rate(resourceType, input.Amount, industrySize)

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := &entities.ResourceEntry{
		ID:           uuid.New().String(),
		UserID:       userID,
		ResourceType: resourceType,
		Amount:       input.Amount,
		Unit:         input.Unit,
		Credits:      credits.ForResourceEntry(s.bonusSrc),
		Date:         date,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if _, err := s.creditSvc.Award(ctx, userID, entry.Credits); err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx, userID)

	return &ResourceResult{
		Entry:       entry,
		Rating:      rating,
		Suggestions: s.suggestions(ctx, entry, rating, industrySize),
	}, nil
}

// List returns the user's entries newest first.
func (s *ResourceService) List(ctx context.Context, userID string) ([]*entities.ResourceEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ResourceService) suggestions(ctx context.Context, entry *entities.ResourceEntry, rating ecorank.Rating, industrySize string) string {
	sizeName := capitalize(industrySize)
	prompt := fmt.Sprintf(`Analyze this %s rated resource usage for a %s business: %s - %.2f %s (Industry benchmark for %s: %.1f %s is good, %.1f %s is normal).

Provide 3-4 specific, actionable enhancement points to improve this %s rating:
1. Immediate action to reduce consumption
2. Long-term strategy for efficiency
3. Technology or equipment recommendations
4. Behavioral changes for a %s operation

Be specific, practical, and tailored to the current %s rating level and %s business size.`,
		strings.ToUpper(rating.Level), sizeName, entry.ResourceType, entry.Amount, entry.Unit,
		sizeName, rating.Benchmark.Good, rating.Benchmark.Unit, rating.Benchmark.Normal, rating.Benchmark.Unit,
		rating.Level, sizeName, rating.Level, sizeName)

	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("ai suggestions unavailable, using fallback")
		return suggestionsUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return suggestionsUnavailable
	}
	return text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
