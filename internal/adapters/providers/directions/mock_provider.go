package directions

import (
	"context"
	"fmt"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
)

// MockDirectionsProvider implements a mock directions provider for testing
type MockDirectionsProvider struct{}

// NewMockDirectionsProvider creates a new mock directions provider
func NewMockDirectionsProvider() providers.DirectionsProvider {
	return &MockDirectionsProvider{}
}

// GetDirections returns a fixed two-step route between the given addresses
func (m *MockDirectionsProvider) GetDirections(ctx context.Context, origin, destination, mode string) (*providers.Directions, error) {
	return &providers.Directions{
		Polyline:        "mock_polyline",
		DistanceMeters:  5000,
		DurationSeconds: 900,
		Steps: []providers.RouteStep{
			{Instruction: fmt.Sprintf("Head toward %s", destination), Distance: "2.5 km", Duration: "8 mins"},
			{Instruction: fmt.Sprintf("Arrive at %s", destination), Distance: "2.5 km", Duration: "7 mins"},
		},
		StartAddress: origin,
		EndAddress:   destination,
	}, nil
}
