package blocks

import (
	"context"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// BlockRepository repository of bloqueos
type BlockRepository interface {
	Create(ctx context.Context, b *domain.Block) (*domain.Block, error)
	GetByID(ctx context.Context, id int64) (*domain.Block, error)
	ListInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Block, error)
	CountOverlapping(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (int64, error)
	Update(ctx context.Context, b *domain.Block) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository overlap check against scheduled citas
type AppointmentRepository interface {
	CountOverlapping(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (int64, error)
}

// BarberRepository existence check for the block owner
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// TransactionManager serializable transaction boundary for block writes
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
