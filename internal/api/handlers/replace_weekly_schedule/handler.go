package replace_weekly_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/schedule"
	"github.com/chris030500/Barberia/internal/service/schedule/models"
)

const (
	msgInvalidBarberID    = "ID de barbero inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgBarberNotFound     = "barbero no encontrado"
	msgEntriesOverlap     = "los rangos del horario se superponen"
	msgInvalidInput       = "horario inválido"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/barberos/{barberoId}/horario-semanal
// The submitted horario replaces the stored one atomically.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /barberos/{id}/horario-semanal - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barberos/{id}/horario-semanal - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("PUT /barberos/{id}/horario-semanal - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrEntriesOverlap):
			h.logger.Warn("PUT /barberos/{id}/horario-semanal - Entries overlap: barber_id=%d, error=%v", barberID, err)
			handlers.RespondConflict(w, msgEntriesOverlap)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /barberos/{id}/horario-semanal - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /barberos/{id}/horario-semanal - Failed to replace schedule: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barberos/{id}/horario-semanal - Schedule replaced: barber_id=%d, entries=%d",
		barberID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
