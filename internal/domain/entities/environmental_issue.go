package entities

import (
	"time"
)

// Issue lifecycle states.
const (
	IssueStatusPending    = "pending"
	IssueStatusInProgress = "in-progress"
	IssueStatusResolved   = "resolved"
)

// ValidIssueStatus reports whether s is a known lifecycle state.
func ValidIssueStatus(s string) bool {
	switch s {
	case IssueStatusPending, IssueStatusInProgress, IssueStatusResolved:
		return true
	}
	return false
}

// EnvironmentalIssue is a community report of a local problem. Credits
// are fixed at creation.
type EnvironmentalIssue struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Category    string    `json:"category" db:"category"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	Status      string    `json:"status" db:"status"`
	Credits     int       `json:"credits" db:"credits"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
