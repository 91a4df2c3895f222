package models

import (
	"errors"
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

var (
	// ErrInvalidStatus returned when the estado string is not a known state
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ChangeStatusRequest request to move a cita through the state machine
type ChangeStatusRequest struct {
	Status string `json:"estado"`
}

// ListAppointmentsRequest paged listing filter. From/To bound the interval
// overlap; nil barber or status means no filtering on that field.
type ListAppointmentsRequest struct {
	BarberID *int64     `json:"barberoId,omitempty"`
	Status   *string    `json:"estado,omitempty"`
	From     time.Time  `json:"desde"`
	To       time.Time  `json:"hasta"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

// ToDomainFilter converts the request into the repository filter, applying
// the paging defaults and caps.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BarberID: r.BarberID,
		From:     r.From,
		To:       r.To,
		Page:     r.Page,
		PageSize: r.PageSize,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = domain.DefaultPageSize
	}
	if filter.PageSize > domain.MaxPageSize {
		filter.PageSize = domain.MaxPageSize
	}

	return filter, nil
}

// ToDomainStatus parses an estado string.
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AppointmentResponse one cita in API form
type AppointmentResponse struct {
	ID        int64 `json:"id"`
	BarberID  int64 `json:"barberoId"`
	ServiceID int64 `json:"servicioId"`

	ClientName      string  `json:"clienteNombre"`
	ClientPhoneE164 *string `json:"clienteTelefono,omitempty"`

	Start  time.Time `json:"inicio"`
	End    time.Time `json:"fin"`
	Status string    `json:"estado"`

	DurationOverrideMin   *int `json:"overrideDuracionMin,omitempty"`
	PriceOverrideCentavos *int `json:"overridePrecioCentavos,omitempty"`

	ServiceName string  `json:"servicioNombre,omitempty"`
	Notes       *string `json:"notas,omitempty"`

	CreatedAt time.Time  `json:"creadoEn"`
	UpdatedAt *time.Time `json:"actualizadoEn,omitempty"`
}

// AppointmentListResponse paged listing of citas
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"citas"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"pageSize"`
}

// FromDomainAppointment converts a domain cita to API form.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                    a.ID,
		BarberID:              a.BarberID,
		ServiceID:             a.ServiceID,
		ClientName:            a.ClientName,
		ClientPhoneE164:       a.ClientPhoneE164,
		Start:                 a.Start,
		End:                   a.End,
		Status:                string(a.Status),
		DurationOverrideMin:   a.DurationOverrideMin,
		PriceOverrideCentavos: a.PriceOverrideCentavos,
		ServiceName:           a.ServiceName,
		Notes:                 a.Notes,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a page of citas.
func FromDomainAppointmentList(items []*domain.Appointment, total int64, page, pageSize int) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
}
