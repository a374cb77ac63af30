package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
)

// Mocks shared across the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, update repositories.ProfileUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) IncrementPoints(ctx context.Context, id string, points int) (*entities.User, error) {
	args := m.Called(ctx, id, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Top(ctx context.Context, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, entry *entities.ResourceEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockResourceRepository) ListByUser(ctx context.Context, userID string) ([]*entities.ResourceEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ResourceEntry), args.Error(1)
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *entities.NavigationRoute) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) ListByUser(ctx context.Context, userID string) ([]*entities.NavigationRoute, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NavigationRoute), args.Error(1)
}

type MockWasteRepository struct {
	mock.Mock
}

func (m *MockWasteRepository) Create(ctx context.Context, classification *entities.WasteClassification) error {
	args := m.Called(ctx, classification)
	return args.Error(0)
}

func (m *MockWasteRepository) ListByUser(ctx context.Context, userID string) ([]*entities.WasteClassification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WasteClassification), args.Error(1)
}

type MockIrrigationRepository struct {
	mock.Mock
}

func (m *MockIrrigationRepository) Create(ctx context.Context, schedule *entities.IrrigationSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockIrrigationRepository) ListByUser(ctx context.Context, userID string) ([]*entities.IrrigationSchedule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.IrrigationSchedule), args.Error(1)
}

type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, issue *entities.EnvironmentalIssue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) ListByUser(ctx context.Context, userID string) ([]*entities.EnvironmentalIssue, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EnvironmentalIssue), args.Error(1)
}

func (m *MockIssueRepository) ListAll(ctx context.Context) ([]*entities.EnvironmentalIssue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EnvironmentalIssue), args.Error(1)
}

func (m *MockIssueRepository) UpdateStatus(ctx context.Context, id, status string) (*entities.EnvironmentalIssue, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EnvironmentalIssue), args.Error(1)
}

type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockAIProvider) ClassifyImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	args := m.Called(ctx, prompt, mimeType, data)
	return args.String(0), args.Error(1)
}

type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockDirectionsProvider struct {
	mock.Mock
}

func (m *MockDirectionsProvider) GetDirections(ctx context.Context, origin, destination, mode string) (*providers.Directions, error) {
	args := m.Called(ctx, origin, destination, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.Directions), args.Error(1)
}
