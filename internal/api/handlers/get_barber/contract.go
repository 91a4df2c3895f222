package get_barber

import (
	"context"

	"github.com/chris030500/Barberia/internal/service/catalog/models"
)

type CatalogService interface {
	GetBarber(ctx context.Context, id int64) (*models.BarberResponse, *models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
