package services

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// CreditService is the eco-point ledger. Every credit-bearing action
// funnels through Award so the increment-and-relevel happens in one
// place, atomically.
type CreditService struct {
	userRepo repositories.UserRepository
}

// NewCreditService creates a new credit service.
func NewCreditService(userRepo repositories.UserRepository) *CreditService {
	return &CreditService{userRepo: userRepo}
}

// Award adds points to a user's total and returns the updated user.
// Fails with NotFound when the user does not exist; callers must ensure
// the user first.
func (s *CreditService) Award(ctx context.Context, userID string, points int) (*entities.User, error) {
	if points < 0 {
		return nil, apperrors.NewValidationError("points must not be negative")
	}
	return s.userRepo.IncrementPoints(ctx, userID, points)
}
