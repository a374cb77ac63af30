package services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
)

const (
	analyticsWindowDays = 30
	analyticsCacheTTL   = 300
	analyticsKeyPrefix  = "analytics:v1:"
	dateKeyFormat       = "2006-01-02"
)

// AnalyticsService builds the per-user reporting payload: three
// cumulative 30-day series plus two all-time breakdowns. The window
// asymmetry (series windowed, breakdowns not) is part of the contract.
type AnalyticsService struct {
	resourceRepo   repositories.ResourceEntryRepository
	routeRepo      repositories.NavigationRouteRepository
	wasteRepo      repositories.WasteClassificationRepository
	irrigationRepo repositories.IrrigationScheduleRepository
	cache          providers.CacheProvider

	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

// NewAnalyticsService creates a new analytics service. cache may be nil,
// in which case every call recomputes.
func NewAnalyticsService(
	resourceRepo repositories.ResourceEntryRepository,
	routeRepo repositories.NavigationRouteRepository,
	wasteRepo repositories.WasteClassificationRepository,
	irrigationRepo repositories.IrrigationScheduleRepository,
	cache providers.CacheProvider,
) *AnalyticsService {
	return &AnalyticsService{
		resourceRepo:   resourceRepo,
		routeRepo:      routeRepo,
		wasteRepo:      wasteRepo,
		irrigationRepo: irrigationRepo,
		cache:          cache,
		now:            time.Now,
	}
}

type dayBucket struct {
	points      int
	carbonSaved float64
	wasteCount  int
}

// Build assembles the analytics report for a user, serving from cache
// when a fresh copy exists.
func (s *AnalyticsService) Build(ctx context.Context, userID string) (*entities.AnalyticsReport, error) {
	cacheKey := analyticsKeyPrefix + userID
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var report entities.AnalyticsReport
			if err := json.Unmarshal(cached, &report); err == nil {
				return &report, nil
			}
		}
	}

	entries, err := s.resourceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	routes, err := s.routeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	classifications, err := s.wasteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.irrigationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := s.aggregate(entries, routes, classifications, schedules)

	if s.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, analyticsCacheTTL); err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("failed to cache analytics report")
			}
		}
	}

	return report, nil
}

// Invalidate drops the cached report for a user. Called after any
// credit-bearing write so the next read reflects it.
func (s *AnalyticsService) Invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, analyticsKeyPrefix+userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate analytics cache")
	}
}

func (s *AnalyticsService) aggregate(
	entries []*entities.ResourceEntry,
	routes []*entities.NavigationRoute,
	classifications []*entities.WasteClassification,
	schedules []*entities.IrrigationSchedule,
) *entities.AnalyticsReport {
	// One bucket per trailing calendar day, ending today (UTC).
	today := s.now().UTC()
	dates := make([]string, 0, analyticsWindowDays)
	buckets := make(map[string]*dayBucket, analyticsWindowDays)
	for i := 0; i < analyticsWindowDays; i++ {
		key := today.AddDate(0, 0, -(analyticsWindowDays - 1 - i)).Format(dateKeyFormat)
		dates = append(dates, key)
		buckets[key] = &dayBucket{}
	}

	// Entries outside the window fall through the map lookup and are
	// silently excluded from the series.
	for _, entry := range entries {
		if bucket, ok := buckets[entry.Date.UTC().Format(dateKeyFormat)]; ok {
			bucket.points += entry.Credits
		}
	}
	for _, route := range routes {
		if bucket, ok := buckets[route.Date.UTC().Format(dateKeyFormat)]; ok {
			bucket.points += route.Credits
			if saved := carbonBaselineKg - route.CarbonEmission; saved > 0 {
				bucket.carbonSaved += saved
			}
		}
	}
	for _, classification := range classifications {
		if bucket, ok := buckets[classification.CreatedAt.UTC().Format(dateKeyFormat)]; ok {
			bucket.points += credits.PerWasteClassification
			bucket.wasteCount++
		}
	}

	ecoPoints := make([]entities.SeriesPoint, 0, analyticsWindowDays)
	carbonSavings := make([]entities.SeriesPoint, 0, analyticsWindowDays)
	wasteHistory := make([]entities.SeriesPoint, 0, analyticsWindowDays)

	var cumulativePoints int
	var cumulativeCarbon float64
	var cumulativeWaste int
	for _, date := range dates {
		bucket := buckets[date]
		cumulativePoints += bucket.points
		cumulativeCarbon += bucket.carbonSaved
		cumulativeWaste += bucket.wasteCount

		ecoPoints = append(ecoPoints, entities.SeriesPoint{Date: date, Value: float64(cumulativePoints)})
		carbonSavings = append(carbonSavings, entities.SeriesPoint{Date: date, Value: round2(cumulativeCarbon)})
		wasteHistory = append(wasteHistory, entities.SeriesPoint{Date: date, Value: float64(cumulativeWaste)})
	}

	// Breakdowns are all-time, not windowed.
	resourceBreakdown := make([]entities.ResourceTotal, 0)
	resourceIndex := make(map[string]int)
	for _, entry := range entries {
		idx, ok := resourceIndex[entry.ResourceType]
		if !ok {
			idx = len(resourceBreakdown)
			resourceIndex[entry.ResourceType] = idx
			resourceBreakdown = append(resourceBreakdown, entities.ResourceTotal{ResourceType: entry.ResourceType})
		}
		resourceBreakdown[idx].TotalAmount = round2(resourceBreakdown[idx].TotalAmount + entry.Amount)
		resourceBreakdown[idx].Count++
	}

	activityBreakdown := []entities.ActivityCount{
		{Category: "Resources", Count: len(entries)},
		{Category: "Routes", Count: len(routes)},
		{Category: "Waste", Count: len(classifications)},
		{Category: "Irrigation", Count: len(schedules)},
	}

	return &entities.AnalyticsReport{
		EcoPointsHistory:           ecoPoints,
		CarbonSavingsHistory:       carbonSavings,
		WasteClassificationHistory: wasteHistory,
		ResourceBreakdown:          resourceBreakdown,
		ActivityBreakdown:          activityBreakdown,
	}
}

// carbonBaselineKg is the flat solo-car baseline this aggregate
// compares routes against, matching the simple trip estimator.
const carbonBaselineKg = 10.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
