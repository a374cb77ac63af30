package entities

import (
	"time"
)

// PointsPerLevel is the eco-point span of one level.
const PointsPerLevel = 500

// User represents a platform member. EcoPoints and Level are mutated
// only through the credit ledger; Level is derived, never set directly.
type User struct {
	ID              string    `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	FirstName       string    `json:"firstName" db:"first_name"`
	LastName        string    `json:"lastName" db:"last_name"`
	EcoPoints       int       `json:"ecoPoints" db:"eco_points"`
	Level           int       `json:"level" db:"level"`
	CarbonFootprint float64   `json:"carbonFootprint" db:"carbon_footprint"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// LevelForPoints derives the level for an eco-point total. The SQL
// that increments points applies the same formula; the two must agree.
func LevelForPoints(ecoPoints int) int {
	if ecoPoints < 0 {
		return 1
	}
	return ecoPoints/PointsPerLevel + 1
}
