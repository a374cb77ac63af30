package entities

import (
	"time"
)

// WasteClassification is the stored result of an AI vision pass over a
// waste photo. Recyclable is kept as 0/1 for parity with the historical
// schema.
type WasteClassification struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Category   string    `json:"category" db:"category"`
	Recyclable int       `json:"recyclable" db:"recyclable"`
	Confidence float64   `json:"confidence" db:"confidence"`
	ImageURL   *string   `json:"imageUrl" db:"image_url"`
	Suggestion string    `json:"suggestion" db:"suggestion"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
