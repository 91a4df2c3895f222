package change_appointment_status

import (
	"context"

	"github.com/chris030500/Barberia/internal/service/appointments/models"
)

type AppointmentService interface {
	ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
