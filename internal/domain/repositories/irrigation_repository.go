package repositories

import (
	"context"

	"github.com/merapruthvi/greenpulse/backend/internal/domain/entities"
)

// IrrigationScheduleRepository defines irrigation schedule persistence.
type IrrigationScheduleRepository interface {
	Create(ctx context.Context, schedule *entities.IrrigationSchedule) error

	// ListByUser returns the user's schedules newest first.
	ListByUser(ctx context.Context, userID string) ([]*entities.IrrigationSchedule, error)
}
