package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	updateAppointment "github.com/chris030500/Barberia/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgNotFound             = "cita no encontrada"
	msgClosed               = "la cita ya está cerrada"
	msgSlotConflict         = "el horario ya está ocupado"
	msgInvalidInput         = "datos inválidos"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/citas/{citaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	citaID, err := strconv.ParseInt(vars["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /citas/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /citas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(citaID))
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /citas/{id} - Not found: cita_id=%d", citaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrAppointmentClosed):
			h.logger.Warn("PATCH /citas/{id} - Already closed: cita_id=%d", citaID)
			handlers.RespondConflict(w, msgClosed)

		case errors.Is(err, updateAppointment.ErrSlotConflict):
			h.logger.Warn("PATCH /citas/{id} - Slot conflict: cita_id=%d", citaID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /citas/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /citas/{id} - Failed to update appointment: cita_id=%d, error=%v", citaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /citas/{id} - Appointment updated: cita_id=%d", citaID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
