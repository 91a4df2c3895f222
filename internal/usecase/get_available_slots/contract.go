package get_available_slots

import (
	"context"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// BarberRepository existence check for the requested barber
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// CatalogRepository lookup of the requested service
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ScheduleRepository weekly horario entries for one day of week
type ScheduleRepository interface {
	GetActiveByBarberAndDay(ctx context.Context, barberID int64, dayOfWeek int) ([]*domain.WeeklyScheduleEntry, error)
}

// BlockRepository time-off blocks overlapping a range
type BlockRepository interface {
	ListInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Block, error)
}

// AppointmentRepository scheduled citas overlapping a range
type AppointmentRepository interface {
	GetScheduledInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// TimeProvider clock source, injectable for tests. Now is read once per
// request so the advance cutoffs stay consistent within one response.
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
