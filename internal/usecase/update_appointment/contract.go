package update_appointment

import (
	"context"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// CatalogRepository lookup of the service backing the cita
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AppointmentRepository persistence of citas
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	CountOverlapping(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (int64, error)
	Update(ctx context.Context, a *domain.Appointment) error
}

// TransactionManager serializable transaction boundary for rescheduling
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
