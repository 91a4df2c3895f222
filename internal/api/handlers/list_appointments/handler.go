package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chris030500/Barberia/internal/api/handlers"
	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/internal/service/appointments"
	"github.com/chris030500/Barberia/internal/service/appointments/models"
)

const (
	msgInvalidBarberID = "ID de barbero inválido"
	msgMissingRange    = "desde y hasta son obligatorios"
	msgInvalidRange    = "rango de fechas inválido, se espera YYYY-MM-DD"
	msgInvalidStatus   = "estado inválido"
	msgInvalidPaging   = "paginación inválida"
	msgInvalidInput    = "parámetros inválidos"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/citas
// Query params: desde (required, YYYY-MM-DD), hasta (required, YYYY-MM-DD),
// barberoId (optional), estado (optional), page (optional), pageSize (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("desde")
	toStr := query.Get("hasta")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /citas - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /citas - Invalid 'desde': %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /citas - Invalid 'hasta': %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}
	// The range is inclusive on the last day
	to = to.AddDate(0, 0, 1)

	req := &models.ListAppointmentsRequest{From: from, To: to}

	if raw := query.Get("barberoId"); raw != "" {
		barberID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /citas - Invalid barber ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		req.BarberID = &barberID
	}

	if raw := query.Get("estado"); raw != "" {
		req.Status = &raw
	}

	if req.Page, err = optionalIntParam(query.Get("page")); err != nil {
		h.logger.Warn("GET /citas - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}
	if req.PageSize, err = optionalIntParam(query.Get("pageSize")); err != nil {
		h.logger.Warn("GET /citas - Invalid page size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /citas - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /citas - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /citas - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /citas - Listed %d of %d appointments", len(result.Appointments), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func optionalIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
