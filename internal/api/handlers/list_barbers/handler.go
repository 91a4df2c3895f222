package list_barbers

import (
	"net/http"

	"github.com/chris030500/Barberia/internal/api/handlers"
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

// Handle GET /api/barberos
// Query params: soloActivos (optional, "true" hides inactive barbers)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("soloActivos") == "true"

	result, err := h.service.ListBarbers(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /barberos - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barberos - Listed %d barbers", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
