package get_availability_summary

import (
	"context"

	"github.com/chris030500/Barberia/internal/service/availability/models"
)

type AvailabilityService interface {
	GetSummary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
