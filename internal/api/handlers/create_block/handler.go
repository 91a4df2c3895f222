package create_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/blocks"
	"github.com/chris030500/Barberia/internal/service/blocks/models"
)

const (
	msgInvalidBarberID     = "ID de barbero inválido"
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgBarberNotFound      = "barbero no encontrado"
	msgBlockOverlap        = "el bloqueo se superpone con otro bloqueo"
	msgAppointmentConflict = "el bloqueo se superpone con citas agendadas"
	msgInvalidInput        = "datos inválidos"
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

// Handle POST /api/barberos/{barberoId}/bloqueos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberoId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /barberos/{id}/bloqueos - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barberos/{id}/bloqueos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// The path owns the barber; the body may not redirect it
	req.BarberID = barberID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrBarberNotFound):
			h.logger.Warn("POST /barberos/{id}/bloqueos - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, blocks.ErrBlockOverlap):
			h.logger.Warn("POST /barberos/{id}/bloqueos - Block overlap: barber_id=%d", barberID)
			handlers.RespondConflict(w, msgBlockOverlap)

		case errors.Is(err, blocks.ErrAppointmentConflict):
			h.logger.Warn("POST /barberos/{id}/bloqueos - Appointment conflict: barber_id=%d", barberID)
			handlers.RespondConflict(w, msgAppointmentConflict)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /barberos/{id}/bloqueos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barberos/{id}/bloqueos - Failed to create block: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barberos/{id}/bloqueos - Block created: id=%d, barber_id=%d", result.ID, barberID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
