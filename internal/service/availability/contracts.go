package availability

import (
	"context"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
	slotsUC "github.com/chris030500/Barberia/internal/usecase/get_available_slots"
)

// SlotsUseCase the slot engine this facade aggregates over
type SlotsUseCase interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// BarberRepository profile and offered services of the queried barber
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	ListServices(ctx context.Context, barberID int64) ([]*domain.Service, error)
}

// ScheduleRepository weekly horario backing the summary metrics
type ScheduleRepository interface {
	GetByBarber(ctx context.Context, barberID int64) ([]*domain.WeeklyScheduleEntry, error)
}

// CatalogRepository default service pick when the caller names none
type CatalogRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
}

// BlockRepository upcoming bloqueos of the barber
type BlockRepository interface {
	GetUpcoming(ctx context.Context, barberID int64, after time.Time, limit int) ([]*domain.Block, error)
}

// AppointmentRepository upcoming scheduled citas of the barber
type AppointmentRepository interface {
	GetUpcoming(ctx context.Context, barberID int64, from time.Time, limit int) ([]*domain.Appointment, error)
}

// TimeProvider clock source, injectable for tests
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
