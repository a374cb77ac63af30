package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/carbon"
	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// DirectionsResult is a resolved route with its estimated emission in
// grams, ready for the wire.
type DirectionsResult struct {
	*providers.Directions
	CarbonEmission float64 `json:"carbonEmission"`
}

// RouteInput is a journey to log.
type RouteInput struct {
	StartLocation string  `json:"startLocation"`
	EndLocation   string  `json:"endLocation"`
	TransportMode string  `json:"transportMode"`
	Distance      float64 `json:"distance"`
}

// NavigationService resolves directions and logs journeys with their
// carbon estimates and credit awards.
type NavigationService struct {
	repo       repositories.NavigationRouteRepository
	directions providers.DirectionsProvider
	creditSvc  *CreditService
	analytics  *AnalyticsService
}

// NewNavigationService creates a new navigation service.
func NewNavigationService(
	repo repositories.NavigationRouteRepository,
	directions providers.DirectionsProvider,
	creditSvc *CreditService,
	analytics *AnalyticsService,
) *NavigationService {
	return &NavigationService{
		repo:       repo,
		directions: directions,
		creditSvc:  creditSvc,
		analytics:  analytics,
	}
}

// GetDirections resolves a route through the directions provider and
// attaches the per-distance emission estimate for the travel mode.
func (s *NavigationService) GetDirections(ctx context.Context, origin, destination, travelMode string) (*DirectionsResult, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" || strings.TrimSpace(travelMode) == "" {
		return nil, apperrors.NewValidationError("start, destination and travelMode are required")
	}

	mode, fellBack := carbon.ResolveRouteMode(travelMode)
	if fellBack {
		log.Warn().Str("travel_mode", travelMode).Msg("unknown travel mode, estimating as DRIVING")
	}

	route, err := s.directions.GetDirections(ctx, origin, destination, mode)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to resolve directions", err)
	}

	estimate := carbon.EstimateRoute(float64(route.DistanceMeters)/1000, mode)

	return &DirectionsResult{
		Directions:     route,
		CarbonEmission: estimate.EmissionGrams,
	}, nil
}

// LogRoute persists a journey, computes its emission against the flat
// baseline, awards mode credits and returns the stored route.
func (s *NavigationService) LogRoute(ctx context.Context, userID string, input RouteInput) (*entities.NavigationRoute, error) {
	if strings.TrimSpace(input.StartLocation) == "" || strings.TrimSpace(input.EndLocation) == "" {
		return nil, apperrors.NewValidationError("startLocation and endLocation are required")
	}
	if input.Distance < 0 {
		return nil, apperrors.NewValidationError("distance must not be negative")
	}

	mode, fellBack := carbon.ResolveMode(input.TransportMode)
	if fellBack {
		log.Warn().Str("transport_mode", input.TransportMode).Msg("unknown transport mode, treating as car")
	}

	estimate := carbon.EstimateSimple(input.Distance, mode)
	award, _ := credits.ForTransportMode(mode)

	route := &entities.NavigationRoute{
		ID:             uuid.New().String(),
		UserID:         userID,
		StartLocation:  input.StartLocation,
		EndLocation:    input.EndLocation,
		TransportMode:  mode,
		Distance:       input.Distance,
		CarbonEmission: estimate.EmissionKg,
		Credits:        award,
		Date:           time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}

	if _, err := s.creditSvc.Award(ctx, userID, award); err != nil {
		return nil, err
	}
	s.analytics.Invalidate(ctx, userID)

	return route, nil
}

// List returns the user's routes newest first.
func (s *NavigationService) List(ctx context.Context, userID string) ([]*entities.NavigationRoute, error) {
	return s.repo.ListByUser(ctx, userID)
}
