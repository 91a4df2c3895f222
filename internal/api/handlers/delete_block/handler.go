package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/service/blocks"
)

const (
	msgInvalidBlockID = "ID de bloqueo inválido"
	msgNotFound       = "bloqueo no encontrado"
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

// Handle DELETE /api/bloqueos/{bloqueoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blockID, err := strconv.ParseInt(vars["bloqueoId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bloqueos/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /bloqueos/{id} - Not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bloqueos/{id} - Failed to delete block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bloqueos/{id} - Block deleted: block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
