package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	getAvailableSlots "github.com/chris030500/Barberia/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarberID   = "ID de barbero inválido"
	msgInvalidServiceID  = "ID de servicio inválido"
	msgMissingServiceID  = "el ID de servicio es obligatorio"
	msgMissingDate       = "la fecha es obligatoria"
	msgInvalidDate       = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidSlotSize   = "slotSizeMin inválido"
	msgInvalidDuration   = "duracionMin inválida"
	msgBarberNotFound    = "barbero no encontrado"
	msgServiceNotFound   = "servicio no encontrado"
	msgInvalidParameters = "parámetros inválidos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/barberos/{barberoId}/slots
// Query params: servicioId (required), fecha (required, YYYY-MM-DD),
// slotSizeMin (optional), duracionMin (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/slots - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	serviceIDStr := r.URL.Query().Get("servicioId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /barberos/{id}/slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("fecha")
	if dateStr == "" {
		h.logger.Warn("GET /barberos/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	slotSizeMin, err := optionalIntParam(r, "slotSizeMin")
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/slots - Invalid slot size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotSize)
		return
	}

	durationMin, err := optionalIntParam(r, "duracionMin")
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(barberID, serviceID, dateStr, slotSizeMin, durationMin)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /barberos/{id}/slots - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barberos/{id}/slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barberos/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		default:
			h.logger.Error("GET /barberos/{id}/slots - Failed to compute slots: barber_id=%d, service_id=%d, error=%v",
				barberID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barberos/{id}/slots - Slots computed: barber_id=%d, service_id=%d, slots_count=%d",
		barberID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func optionalIntParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
