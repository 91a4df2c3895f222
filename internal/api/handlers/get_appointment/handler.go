package get_appointment

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

// Handle GET /api/citas/{citaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	citaID, err := strconv.ParseInt(vars["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /citas/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), citaID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /citas/{id} - Not found: cita_id=%d", citaID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /citas/{id} - Failed to get appointment: cita_id=%d, error=%v", citaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /citas/{id} - Appointment retrieved: cita_id=%d", citaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
