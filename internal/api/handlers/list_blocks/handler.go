package list_blocks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/internal/service/blocks"
	"github.com/chris030500/Barberia/internal/service/blocks/models"
)

const (
	msgInvalidBarberID = "ID de barbero inválido"
	msgMissingRange    = "desde y hasta son obligatorios"
	msgInvalidRange    = "rango de fechas inválido, se espera YYYY-MM-DD"
	msgInvalidInput    = "parámetros inválidos"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/barberos/{barberoId}/bloqueos
// Query params: desde (required, YYYY-MM-DD), hasta (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/bloqueos - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("desde")
	toStr := query.Get("hasta")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /barberos/{id}/bloqueos - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/bloqueos - Invalid 'desde': %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /barberos/{id}/bloqueos - Invalid 'hasta': %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}
	// The range is inclusive on the last day
	to = to.AddDate(0, 0, 1)

	result, err := h.service.List(r.Context(), &models.ListBlocksRequest{
		BarberID: barberID,
		From:     from,
		To:       to,
	})
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("GET /barberos/{id}/bloqueos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /barberos/{id}/bloqueos - Failed to list blocks: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barberos/{id}/bloqueos - Listed %d blocks: barber_id=%d", result.Total, barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
