package schedule

import (
	"context"

	"github.com/chris030500/Barberia/internal/domain"
)

// ScheduleRepository repository of the weekly horario
type ScheduleRepository interface {
	GetByBarber(ctx context.Context, barberID int64) ([]*domain.WeeklyScheduleEntry, error)
	Replace(ctx context.Context, barberID int64, entries []*domain.WeeklyScheduleEntry) error
}

// BarberRepository existence check for the schedule owner
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// TransactionManager transaction boundary for the replace-all write
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
