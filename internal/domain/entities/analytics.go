package entities

// SeriesPoint is one day of a cumulative reporting series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ResourceTotal is the all-time total for one resource type.
type ResourceTotal struct {
	ResourceType string  `json:"resourceType"`
	TotalAmount  float64 `json:"totalAmount"`
	Count        int     `json:"count"`
}

// ActivityCount is the all-time record count for one activity category.
type ActivityCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AnalyticsReport is the payload served by the analytics endpoint. The
// three histories cover a trailing 30 day window; the breakdowns are
// all-time totals, deliberately not windowed.
type AnalyticsReport struct {
	EcoPointsHistory           []SeriesPoint   `json:"ecoPointsHistory"`
	CarbonSavingsHistory       []SeriesPoint   `json:"carbonSavingsHistory"`
	WasteClassificationHistory []SeriesPoint   `json:"wasteClassificationHistory"`
	ResourceBreakdown          []ResourceTotal `json:"resourceBreakdown"`
	ActivityBreakdown          []ActivityCount `json:"activityBreakdown"`
}

// UserStats is the payload served by the user stats endpoint.
type UserStats struct {
	TotalResources int     `json:"totalResources"`
	TotalRoutes    int     `json:"totalRoutes"`
	TotalIssues    int     `json:"totalIssues"`
	CarbonSaved    float64 `json:"carbonSaved"`
}
