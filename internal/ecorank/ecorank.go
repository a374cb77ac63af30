// Package ecorank rates a resource reading against industry benchmarks
// adjusted for company size.
package ecorank

import (
	"math"
	"strings"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// Rating levels, best to worst.
const (
	LevelGood   = "Good"
	LevelNormal = "Normal"
	LevelBad    = "Bad"
	LevelWorst  = "Worst"
)

// Industry sizes accepted on a rating request.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeEnterprise = "enterprise"
)

// Benchmark is the size-adjusted threshold triple a reading was rated
// against. Good < Normal < Bad; readings above Bad rate Worst.
type Benchmark struct {
	Good   float64 `json:"good"`
	Normal float64 `json:"normal"`
	Bad    float64 `json:"bad"`
	Unit   string  `json:"unit"`
}

// Rating is the outcome of rating one reading.
type Rating struct {
	Level      string    `json:"level"`
	Color      string    `json:"color"`
	Benchmark  Benchmark `json:"benchmark"`
	Percentage int       `json:"percentage"`
}

// Base benchmarks are calibrated for medium-sized operations.
var baseBenchmarks = map[string]Benchmark{
	entities.ResourceTypeElectricity: {Good: 50, Normal: 100, Bad: 200, Unit: "kWh"},
	entities.ResourceTypeWater:       {Good: 100, Normal: 200, Bad: 400, Unit: "L"},
	entities.ResourceTypeGas:         {Good: 20, Normal: 50, Bad: 100, Unit: "m³"},
}

var sizeMultipliers = map[string]float64{
	SizeSmall:      0.5,
	SizeMedium:     1.0,
	SizeLarge:      2.5,
	SizeEnterprise: 5.0,
}

// ResolveResourceType canonicalizes a resource type. Unknown values
// resolve to electricity; the second return reports the fallback so
// callers can surface it instead of hiding it.
func ResolveResourceType(resourceType string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(resourceType))
	if _, ok := baseBenchmarks[normalized]; ok {
		return normalized, false
	}
	return entities.ResourceTypeElectricity, true
}

// ResolveIndustrySize canonicalizes an industry size. Unknown or empty
// values resolve to medium; the second return reports the fallback.
func ResolveIndustrySize(industrySize string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(industrySize))
	if normalized == "" {
		return SizeMedium, false
	}
	if _, ok := sizeMultipliers[normalized]; ok {
		return normalized, false
	}
	return SizeMedium, true
}

// BenchmarkFor returns the size-adjusted benchmark for a resolved
// resource type and industry size.
func BenchmarkFor(resourceType, industrySize string) Benchmark {
	resourceType, _ = ResolveResourceType(resourceType)
	industrySize, _ = ResolveIndustrySize(industrySize)

	base := baseBenchmarks[resourceType]
	mult := sizeMultipliers[industrySize]

	return Benchmark{
		Good:   base.Good * mult,
		Normal: base.Normal * mult,
		Bad:    base.Bad * mult,
		Unit:   base.Unit,
	}
}

// Rate classifies a reading. Percentage expresses the reading relative
// to the Normal threshold for display.
func Rate(resourceType string, amount float64, industrySize string) Rating {
	benchmark := BenchmarkFor(resourceType, industrySize)

	level, color := LevelWorst, "red"
	switch {
	case amount <= benchmark.Good:
		level, color = LevelGood, "green"
	case amount <= benchmark.Normal:
		level, color = LevelNormal, "yellow"
	case amount <= benchmark.Bad:
		level, color = LevelBad, "orange"
	}

	return Rating{
		Level:      level,
		Color:      color,
		Benchmark:  benchmark,
		Percentage: int(math.Round(amount / benchmark.Normal * 100)),
	}
}
