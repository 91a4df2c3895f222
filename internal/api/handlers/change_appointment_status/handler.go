package change_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/appointments"
	"github.com/chris030500/Barberia/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgNotFound             = "cita no encontrada"
	msgInvalidStatus        = "estado inválido"
	msgInvalidTransition    = "transición de estado no permitida"
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

// Handle PATCH /api/citas/{citaId}/estado
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	citaID, err := strconv.ParseInt(vars["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /citas/{id}/estado - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /citas/{id}/estado - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), citaID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /citas/{id}/estado - Not found: cita_id=%d", citaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /citas/{id}/estado - Invalid status %q: cita_id=%d", req.Status, citaID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /citas/{id}/estado - Invalid transition to %q: cita_id=%d", req.Status, citaID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /citas/{id}/estado - Failed to change status: cita_id=%d, error=%v", citaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /citas/{id}/estado - Status changed: cita_id=%d, estado=%s", citaID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
