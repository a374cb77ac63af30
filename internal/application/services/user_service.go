package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// DemoUserID is the fallback account used when a request carries no
// user identity. Auth is out of scope; the demo user keeps the rest of
// the stack honest.
const DemoUserID = "demo-user-123"

const leaderboardLimit = 10

// UserService handles user lookup, profile updates and derived stats.
type UserService struct {
	userRepo     repositories.UserRepository
	resourceRepo repositories.ResourceEntryRepository
	routeRepo    repositories.NavigationRouteRepository
	issueRepo    repositories.EnvironmentalIssueRepository
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repositories.UserRepository,
	resourceRepo repositories.ResourceEntryRepository,
	routeRepo repositories.NavigationRouteRepository,
	issueRepo repositories.EnvironmentalIssueRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
		routeRepo:    routeRepo,
		issueRepo:    issueRepo,
	}
}

// EnsureDemoUser creates the demo account if it does not exist yet.
// Called once at startup.
func (s *UserService) EnsureDemoUser(ctx context.Context) error {
	_, err := s.userRepo.GetByID(ctx, DemoUserID)
	if err == nil {
		return nil
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return err
	}

	log.Info().Str("user_id", DemoUserID).Msg("creating demo user")
	now := time.Now().UTC()
	return s.userRepo.Create(ctx, &entities.User{
		ID:        DemoUserID,
		Email:     "demo@merapruthvi.com",
		FirstName: "Demo",
		LastName:  "User",
		EcoPoints: 0,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Stats returns the user together with counts of their activity and
// total carbon saved across logged routes.
func (s *UserService) Stats(ctx context.Context, userID string) (*entities.User, *entities.UserStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.resourceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	routes, err := s.routeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	issues, err := s.issueRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var carbonSaved float64
	for _, route := range routes {
		carbonSaved += 10 - route.CarbonEmission
	}
	if carbonSaved < 0 {
		carbonSaved = 0
	}

	return user, &entities.UserStats{
		TotalResources: len(entries),
		TotalRoutes:    len(routes),
		TotalIssues:    len(issues),
		CarbonSaved:    carbonSaved,
	}, nil
}

// UpdateProfile validates and applies profile field changes.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update repositories.ProfileUpdate) (*entities.User, error) {
	update.Email = strings.TrimSpace(update.Email)
	update.FirstName = strings.TrimSpace(update.FirstName)
	update.LastName = strings.TrimSpace(update.LastName)

	if update.Email == "" || !strings.Contains(update.Email, "@") {
		return nil, apperrors.NewValidationError("a valid email is required")
	}
	if update.FirstName == "" {
		return nil, apperrors.NewValidationError("first name is required")
	}
	if update.LastName == "" {
		return nil, apperrors.NewValidationError("last name is required")
	}

	return s.userRepo.UpdateProfile(ctx, userID, update)
}

// Leaderboard returns the top users by eco-points.
func (s *UserService) Leaderboard(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.Top(ctx, leaderboardLimit)
}
