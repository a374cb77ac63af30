package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/repositories"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/merapruthvi/greenpulse/backend/pkg/errors"
)

// IrrigationAdapter implements the IrrigationScheduleRepository interface
type IrrigationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewIrrigationAdapter creates a new irrigation schedule adapter
func NewIrrigationAdapter(client *postgres.Client) repositories.IrrigationScheduleRepository {
	return &IrrigationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts an irrigation schedule
func (a *IrrigationAdapter) Create(ctx context.Context, schedule *entities.IrrigationSchedule) error {
	record := goqu.Record{
		"id":               schedule.ID,
		"user_id":          schedule.UserID,
		"crop_type":        schedule.CropType,
		"location":         schedule.Location,
		"soil_moisture":    schedule.SoilMoisture,
		"weather_forecast": []byte(schedule.WeatherForecast),
		"recommendation":   schedule.Recommendation,
		"water_amount":     schedule.WaterAmount,
		"created_at":       schedule.CreatedAt,
	}

	query, args, err := a.db.Insert("irrigation_schedules").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build irrigation schedule insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create irrigation schedule", err)
	}

	return nil
}

// ListByUser returns the user's schedules newest first
func (a *IrrigationAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.IrrigationSchedule, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "crop_type", "location", "soil_moisture",
		"weather_forecast", "recommendation", "water_amount", "created_at",
	).From("irrigation_schedules").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build irrigation schedule list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list irrigation schedules", err)
	}
	defer rows.Close()

	var schedules []*entities.IrrigationSchedule
	for rows.Next() {
		schedule := &entities.IrrigationSchedule{}
		var forecast []byte
		if err := rows.Scan(
			&schedule.ID,
			&schedule.UserID,
			&schedule.CropType,
			&schedule.Location,
			&schedule.SoilMoisture,
			&forecast,
			&schedule.Recommendation,
			&schedule.WaterAmount,
			&schedule.CreatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan irrigation schedule", err)
		}
		schedule.WeatherForecast = forecast
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}
