package get_barber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/catalog"
)

const (
	msgInvalidBarberID = "ID de barbero inválido"
	msgNotFound        = "barbero no encontrado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/barberos/{barberoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barberos/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	barber, services, err := h.service.GetBarber(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			h.logger.Warn("GET /barberos/{id} - Not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /barberos/{id} - Failed to get barber: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barberos/{id} - Barber retrieved: barber_id=%d", barberID)
	handlers.RespondJSON(w, http.StatusOK, &BarberDetailResponse{Barber: barber, Services: services})
}
