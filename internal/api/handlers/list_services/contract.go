package list_services

import (
	"context"

	"github.com/chris030500/Barberia/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
