package providers

import (
	"context"
)

// RouteStep is one turn instruction of a driving route.
type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

// Directions is a resolved route between two addresses.
type Directions struct {
	Polyline        string      `json:"polyline"`
	DistanceMeters  int         `json:"distance"`
	DurationSeconds int         `json:"duration"`
	Steps           []RouteStep `json:"steps"`
	StartAddress    string      `json:"startAddress"`
	EndAddress      string      `json:"endAddress"`
}

// DirectionsProvider resolves routes via an external mapping service.
type DirectionsProvider interface {
	GetDirections(ctx context.Context, origin, destination, mode string) (*Directions, error)
}
