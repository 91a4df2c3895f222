package get_availability_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/internal/service/availability"
	"github.com/chris030500/Barberia/internal/service/availability/models"
)

const (
	msgInvalidBarberID  = "ID de barbero inválido"
	msgInvalidServiceID = "ID de servicio inválido"
	msgInvalidDate      = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgBarberNotFound   = "barbero no encontrado"
	msgServiceNotFound  = "servicio no encontrado"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/barberos/{barberoId}/disponibilidad
// Query params: servicioId (optional), fecha (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/disponibilidad - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	req := &models.SummaryRequest{BarberID: barberID}

	if raw := r.URL.Query().Get("servicioId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /barberos/{id}/disponibilidad - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = serviceID
	}

	if raw := r.URL.Query().Get("fecha"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /barberos/{id}/disponibilidad - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	result, err := h.service.GetSummary(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrBarberNotFound):
			h.logger.Warn("GET /barberos/{id}/disponibilidad - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, availability.ErrServiceNotFound):
			h.logger.Warn("GET /barberos/{id}/disponibilidad - Service not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /barberos/{id}/disponibilidad - Failed to build summary: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barberos/{id}/disponibilidad - Summary built: barber_id=%d, slots_today=%d",
		barberID, result.SlotsToday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
