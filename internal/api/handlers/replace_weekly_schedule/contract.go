package replace_weekly_schedule

import (
	"context"

	"github.com/chris030500/Barberia/internal/service/schedule/models"
)

type ScheduleService interface {
	Replace(ctx context.Context, barberID int64, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
