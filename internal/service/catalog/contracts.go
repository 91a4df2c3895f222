package catalog

import (
	"context"

	"github.com/chris030500/Barberia/internal/domain"
)

// BarberRepository repository of barberos
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Barber, error)
	ListServices(ctx context.Context, barberID int64) ([]*domain.Service, error)
}

// ServiceRepository repository of the servicio catalog
type ServiceRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
