package update_block

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
	msgInvalidBlockID      = "ID de bloqueo inválido"
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgNotFound            = "bloqueo no encontrado"
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

// Handle PATCH /api/bloqueos/{bloqueoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blockID, err := strconv.ParseInt(vars["bloqueoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bloqueos/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	var req models.UpdateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bloqueos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), blockID, &req)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("PATCH /bloqueos/{id} - Not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blocks.ErrBlockOverlap):
			h.logger.Warn("PATCH /bloqueos/{id} - Block overlap: block_id=%d", blockID)
			handlers.RespondConflict(w, msgBlockOverlap)

		case errors.Is(err, blocks.ErrAppointmentConflict):
			h.logger.Warn("PATCH /bloqueos/{id} - Appointment conflict: block_id=%d", blockID)
			handlers.RespondConflict(w, msgAppointmentConflict)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("PATCH /bloqueos/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bloqueos/{id} - Failed to update block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bloqueos/{id} - Block updated: block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
