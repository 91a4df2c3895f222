package get_weekly_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/schedule"
)

const (
	msgInvalidBarberID = "ID de barbero inválido"
	msgBarberNotFound  = "barbero no encontrado"
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

// Handle GET /api/barberos/{barberoId}/horario-semanal
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/horario-semanal - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.GetByBarber(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("GET /barberos/{id}/horario-semanal - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /barberos/{id}/horario-semanal - Failed to get schedule: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barberos/{id}/horario-semanal - Schedule retrieved: barber_id=%d, entries=%d",
		barberID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
