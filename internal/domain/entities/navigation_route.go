package entities

import (
	"time"
)

// Transport modes users can log for a route.
const (
	TransportModeWalk    = "walk"
	TransportModeCycle   = "cycle"
	TransportModeBus     = "bus"
	TransportModeMetro   = "metro"
	TransportModeCarpool = "carpool"
	TransportModeCar     = "car"
)

// NavigationRoute is one logged journey. CarbonEmission is kilograms
// of CO2 for the whole trip.
type NavigationRoute struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"userId" db:"user_id"`
	StartLocation  string    `json:"startLocation" db:"start_location"`
	EndLocation    string    `json:"endLocation" db:"end_location"`
	TransportMode  string    `json:"transportMode" db:"transport_mode"`
	Distance       float64   `json:"distance" db:"distance"`
	CarbonEmission float64   `json:"carbonEmission" db:"carbon_emission"`
	Credits        int       `json:"credits" db:"credits"`
	Date           time.Time `json:"date" db:"date"`
}
