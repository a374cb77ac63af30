// Package credits holds the eco-point award policy.
package credits

import (
	"math/rand"
	"sync"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// Fixed awards per action.
const (
	PerIssueReport         = 10
	PerWasteClassification = 5

	// Resource entries earn a base award plus a random efficiency
	// bonus in [0, ResourceBonusRange).
	ResourceBase       = 5
	ResourceBonusRange = 10
)

// Awards per transport mode. Greener modes earn more.
var modeCredits = map[string]int{
	entities.TransportModeWalk:    20,
	entities.TransportModeCycle:   20,
	entities.TransportModeBus:     15,
	entities.TransportModeMetro:   15,
	entities.TransportModeCarpool: 10,
	entities.TransportModeCar:     2,
}

// ForTransportMode returns the award for a resolved transport mode.
// Unknown modes earn the solo-car minimum; the second return reports
// the fallback.
func ForTransportMode(mode string) (int, bool) {
	if c, ok := modeCredits[mode]; ok {
		return c, false
	}
	return modeCredits[entities.TransportModeCar], true
}

// Source supplies the random efficiency bonus. Injected so tests can
// pin exact totals.
type Source interface {
	Intn(n int) int
}

// NewSource returns a Source seeded with the given value, safe for
// concurrent use.
func NewSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// ForResourceEntry computes the award for a resource entry using the
// given bonus source.
func ForResourceEntry(src Source) int {
	return ResourceBase + src.Intn(ResourceBonusRange)
}
