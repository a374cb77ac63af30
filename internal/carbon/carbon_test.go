package carbon_test

import (
	"testing"

	"github.com/merapruthvi/greenpulse/backend/internal/carbon"
	"github.com/stretchr/testify/assert"
)

func TestEstimateSimple(t *testing.T) {
	t.Run("carpool over 10 km saves 9.4 kg against the flat baseline", func(t *testing.T) {
		est := carbon.EstimateSimple(10, "carpool")

		assert.InDelta(t, 0.6, est.EmissionKg, 1e-9)
		assert.InDelta(t, 10.0, est.BaselineKg, 1e-9)
		assert.InDelta(t, 9.4, est.SavingsKg, 1e-9)
	})

	t.Run("walking and cycling emit nothing", func(t *testing.T) {
		for _, mode := range []string{"walk", "cycle"} {
			est := carbon.EstimateSimple(42, mode)
			assert.Zero(t, est.EmissionKg, mode)
			assert.InDelta(t, 10.0, est.SavingsKg, 1e-9, mode)
		}
	})

	t.Run("savings never go negative on long solo drives", func(t *testing.T) {
		est := carbon.EstimateSimple(500, "car") // 100 kg emitted vs 10 kg baseline
		assert.Zero(t, est.SavingsKg)
		assert.InDelta(t, 100.0, est.EmissionKg, 1e-9)
	})

	t.Run("unknown mode is estimated as a solo car", func(t *testing.T) {
		est := carbon.EstimateSimple(10, "teleport")
		solo := carbon.EstimateSimple(10, "car")
		assert.Equal(t, solo, est)
	})
}

func TestEstimateRoute(t *testing.T) {
	t.Run("driving 10 km emits 1200 g against its own baseline", func(t *testing.T) {
		est := carbon.EstimateRoute(10, "DRIVING")

		assert.InDelta(t, 1200, est.EmissionGrams, 1e-9)
		assert.InDelta(t, 1200, est.BaselineGrams, 1e-9)
		assert.Zero(t, est.SavingsGrams)
	})

	t.Run("transit halves emissions relative to driving", func(t *testing.T) {
		est := carbon.EstimateRoute(10, "TRANSIT")

		assert.InDelta(t, 500, est.EmissionGrams, 1e-9)
		assert.InDelta(t, 700, est.SavingsGrams, 1e-9)
	})

	t.Run("walking and bicycling emit nothing", func(t *testing.T) {
		for _, mode := range []string{"WALKING", "BICYCLING"} {
			est := carbon.EstimateRoute(7.5, mode)
			assert.Zero(t, est.EmissionGrams, mode)
			assert.InDelta(t, 900, est.SavingsGrams, 1e-9, mode)
		}
	})

	t.Run("unknown mode is estimated as driving", func(t *testing.T) {
		est := carbon.EstimateRoute(10, "HOVERBOARD")
		driving := carbon.EstimateRoute(10, "DRIVING")
		assert.Equal(t, driving, est)
	})
}

func TestResolveMode(t *testing.T) {
	resolved, fellBack := carbon.ResolveMode(" Carpool ")
	assert.False(t, fellBack)
	assert.Equal(t, "carpool", resolved)

	resolved, fellBack = carbon.ResolveMode("rocket")
	assert.True(t, fellBack)
	assert.Equal(t, "car", resolved)
}

func TestResolveRouteMode(t *testing.T) {
	resolved, fellBack := carbon.ResolveRouteMode("driving")
	assert.False(t, fellBack)
	assert.Equal(t, "DRIVING", resolved)

	resolved, fellBack = carbon.ResolveRouteMode("SWIMMING")
	assert.True(t, fellBack)
	assert.Equal(t, "DRIVING", resolved)
}
