package list_services

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

// Handle GET /api/servicios
// Query params: soloActivos (optional, "true" hides inactive services)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("soloActivos") == "true"

	result, err := h.service.ListServices(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /servicios - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /servicios - Listed %d services", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
