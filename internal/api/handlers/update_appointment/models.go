package update_appointment

import (
	"time"

	updateAppointment "github.com/chris030500/Barberia/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest partial HTTP update body. Omitted fields stay
// unchanged.
type UpdateAppointmentRequest struct {
	ClientName      *string `json:"clienteNombre,omitempty"`
	ClientPhoneE164 *string `json:"clienteTelefono,omitempty"`

	Start *time.Time `json:"inicio,omitempty"`

	DurationOverrideMin   *int `json:"overrideDuracionMin,omitempty"`
	PriceOverrideCentavos *int `json:"overridePrecioCentavos,omitempty"`

	Notes *string `json:"notas,omitempty"`
}

// UpdateAppointmentResponse HTTP response body
type UpdateAppointmentResponse struct {
	ID        int64 `json:"id"`
	BarberID  int64 `json:"barberoId"`
	ServiceID int64 `json:"servicioId"`

	ClientName      string  `json:"clienteNombre"`
	ClientPhoneE164 *string `json:"clienteTelefono,omitempty"`

	Start  time.Time `json:"inicio"`
	End    time.Time `json:"fin"`
	Status string    `json:"estado"`

	DurationMin int `json:"duracionMin"`

	ServiceName string  `json:"servicioNombre,omitempty"`
	Notes       *string `json:"notas,omitempty"`

	UpdatedAt *time.Time `json:"actualizadoEn,omitempty"`
}

// ToUseCaseRequest converts the HTTP body to the use case request.
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) *updateAppointment.Request {
	return &updateAppointment.Request{
		ID:                    id,
		ClientName:            r.ClientName,
		ClientPhoneE164:       r.ClientPhoneE164,
		Start:                 r.Start,
		DurationOverrideMin:   r.DurationOverrideMin,
		PriceOverrideCentavos: r.PriceOverrideCentavos,
		Notes:                 r.Notes,
	}
}

// FromUseCaseResponse converts the use case answer to the HTTP response.
func FromUseCaseResponse(resp *updateAppointment.Response) *UpdateAppointmentResponse {
	return &UpdateAppointmentResponse{
		ID:              resp.ID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		ClientName:      resp.ClientName,
		ClientPhoneE164: resp.ClientPhoneE164,
		Start:           resp.Start,
		End:             resp.End,
		Status:          resp.Status,
		DurationMin:     resp.DurationMin,
		ServiceName:     resp.ServiceName,
		Notes:           resp.Notes,
		UpdatedAt:       resp.UpdatedAt,
	}
}
