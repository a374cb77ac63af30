package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// RouteAdapter implements the NavigationRouteRepository interface
type RouteAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRouteAdapter creates a new navigation route adapter
func NewRouteAdapter(client *postgres.Client) repositories.NavigationRouteRepository {
	return &RouteAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a navigation route
func (a *RouteAdapter) Create(ctx context.Context, route *entities.NavigationRoute) error {
	record := goqu.Record{
		"id":              route.ID,
		"user_id":         route.UserID,
		"start_location":  route.StartLocation,
		"end_location":    route.EndLocation,
		"transport_mode":  route.TransportMode,
		"distance":        route.Distance,
		"carbon_emission": route.CarbonEmission,
		"credits":         route.Credits,
		"date":            route.Date,
	}

	query, args, err := a.db.Insert("navigation_routes").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build route insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create route", err)
	}

	return nil
}

// ListByUser returns the user's routes newest first
func (a *RouteAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.NavigationRoute, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "start_location", "end_location", "transport_mode",
		"distance", "carbon_emission", "credits", "date",
	).From("navigation_routes").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("date").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build route list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list routes", err)
	}
	defer rows.Close()

	var routes []*entities.NavigationRoute
	for rows.Next() {
		route := &entities.NavigationRoute{}
		if err := rows.Scan(
			&route.ID,
			&route.UserID,
			&route.StartLocation,
			&route.EndLocation,
			&route.TransportMode,
			&route.Distance,
			&route.CarbonEmission,
			&route.Credits,
			&route.Date,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan route", err)
		}
		routes = append(routes, route)
	}

	return routes, rows.Err()
}
