// Package carbon estimates trip emissions and savings against a
// solo-driving baseline.
//
// Two baselines coexist on purpose. Quick estimates logged from the
// trip form compare against a flat 10 kg solo-car trip; routes resolved
// through the directions API compare against 120 g/km over the actual
// distance. Unifying them would change every historical figure shown to
// users, so both are kept.
package carbon

import (
	"strings"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// FlatBaselineKg is the solo-car baseline for quick estimates, in kg
// CO2 per trip regardless of distance.
const FlatBaselineKg = 10.0

// DrivingGramsPerKm is the per-distance solo-driving baseline used for
// routes resolved through the directions API.
const DrivingGramsPerKm = 120.0

// Per-km factors in kg CO2 for user-logged transport modes.
var simpleFactors = map[string]float64{
	entities.TransportModeWalk:    0,
	entities.TransportModeCycle:   0,
	entities.TransportModeBus:     0.05,
	entities.TransportModeMetro:   0.03,
	entities.TransportModeCarpool: 0.06,
	entities.TransportModeCar:     0.2,
}

// Per-km factors in grams CO2 for directions API travel modes.
var routeFactors = map[string]float64{
	"WALKING":   0,
	"BICYCLING": 0,
	"TRANSIT":   50,
	"DRIVING":   DrivingGramsPerKm,
}

// Estimate is a trip emission figure with its baseline comparison.
// All values are kilograms of CO2.
type Estimate struct {
	EmissionKg float64
	BaselineKg float64
	SavingsKg  float64
}

// RouteEstimate is the directions-API variant. Values are grams of CO2
// to match the wire format of the directions endpoint.
type RouteEstimate struct {
	EmissionGrams float64
	BaselineGrams float64
	SavingsGrams  float64
}

// ResolveMode canonicalizes a user-logged transport mode. Unknown
// modes resolve to solo car — the pessimistic default, so a bogus mode
// cannot mint savings — and the second return reports the fallback.
func ResolveMode(mode string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if _, ok := simpleFactors[normalized]; ok {
		return normalized, false
	}
	return entities.TransportModeCar, true
}

// ResolveRouteMode canonicalizes a directions API travel mode, falling
// back to DRIVING for unknown values.
func ResolveRouteMode(mode string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(mode))
	if _, ok := routeFactors[normalized]; ok {
		return normalized, false
	}
	return "DRIVING", true
}

// EstimateSimple computes emission and savings for a user-logged trip
// against the flat baseline.
func EstimateSimple(distanceKm float64, mode string) Estimate {
	mode, _ = ResolveMode(mode)
	emission := distanceKm * simpleFactors[mode]

	savings := FlatBaselineKg - emission
	if savings < 0 {
		savings = 0
	}

	return Estimate{
		EmissionKg: emission,
		BaselineKg: FlatBaselineKg,
		SavingsKg:  savings,
	}
}

// EstimateRoute computes emission and savings for a resolved route
// against the per-distance driving baseline.
func EstimateRoute(distanceKm float64, mode string) RouteEstimate {
	mode, _ = ResolveRouteMode(mode)
	emission := distanceKm * routeFactors[mode]
	baseline := distanceKm * DrivingGramsPerKm

	savings := baseline - emission
	if savings < 0 {
		savings = 0
	}

	return RouteEstimate{
		EmissionGrams: emission,
		BaselineGrams: baseline,
		SavingsGrams:  savings,
	}
}
