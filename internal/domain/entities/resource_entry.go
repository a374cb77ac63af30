package entities

import (
	"time"
)

// Resource types tracked by the platform. Unknown values fall back to
// electricity when rated.
const (
	ResourceTypeElectricity = "electricity"
	ResourceTypeWater       = "water"
	ResourceTypeGas         = "gas"
)

// ResourceEntry is one logged consumption reading. Credits are awarded
// at creation and immutable afterwards.
type ResourceEntry struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	ResourceType string    `json:"resourceType" db:"resource_type"`
	Amount       float64   `json:"amount" db:"amount"`
	Unit         string    `json:"unit" db:"unit"`
	Credits      int       `json:"credits" db:"credits"`
	Date         time.Time `json:"date" db:"date"`
}
