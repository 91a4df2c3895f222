package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgNotFound             = "cita no encontrada"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/citas/{citaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	citaID, err := strconv.ParseInt(vars["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /citas/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), citaID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /citas/{id} - Not found: cita_id=%d", citaID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /citas/{id} - Failed to delete appointment: cita_id=%d, error=%v", citaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /citas/{id} - Appointment deleted: cita_id=%d", citaID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
