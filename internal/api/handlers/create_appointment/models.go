package create_appointment

import (
	"time"

	createAppointment "github.com/chris030500/Barberia/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request body. The end is never accepted; it
// is derived server side from the start and the effective duration.
type CreateAppointmentRequest struct {
	BarberID  int64 `json:"barberoId"`
	ServiceID int64 `json:"servicioId"`

	ClientName      string  `json:"clienteNombre"`
	ClientPhoneE164 *string `json:"clienteTelefono,omitempty"`

	Start time.Time `json:"inicio"`

	DurationOverrideMin   *int `json:"overrideDuracionMin,omitempty"`
	PriceOverrideCentavos *int `json:"overridePrecioCentavos,omitempty"`

	Notes *string `json:"notas,omitempty"`
}

// CreateAppointmentResponse HTTP response body
type CreateAppointmentResponse struct {
	ID        int64 `json:"id"`
	BarberID  int64 `json:"barberoId"`
	ServiceID int64 `json:"servicioId"`

	ClientName      string  `json:"clienteNombre"`
	ClientPhoneE164 *string `json:"clienteTelefono,omitempty"`

	Start  time.Time `json:"inicio"`
	End    time.Time `json:"fin"`
	Status string    `json:"estado"`

	DurationMin   int `json:"duracionMin"`
	PriceCentavos int `json:"precioCentavos"`

	ServiceName string  `json:"servicioNombre,omitempty"`
	Notes       *string `json:"notas,omitempty"`

	CreatedAt time.Time `json:"creadoEn"`
}

// ToUseCaseRequest converts the HTTP body to the use case request.
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		BarberID:              r.BarberID,
		ServiceID:             r.ServiceID,
		ClientName:            r.ClientName,
		ClientPhoneE164:       r.ClientPhoneE164,
		Start:                 r.Start,
		DurationOverrideMin:   r.DurationOverrideMin,
		PriceOverrideCentavos: r.PriceOverrideCentavos,
		Notes:                 r.Notes,
	}
}

// FromUseCaseResponse converts the use case answer to the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:              resp.ID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		ClientName:      resp.ClientName,
		ClientPhoneE164: resp.ClientPhoneE164,
		Start:           resp.Start,
		End:             resp.End,
		Status:          resp.Status,
		DurationMin:     resp.DurationMin,
		PriceCentavos:   resp.PriceCentavos,
		ServiceName:     resp.ServiceName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
	}
}
