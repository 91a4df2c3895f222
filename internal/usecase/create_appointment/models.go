package create_appointment

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// Request data for a new cita. End is never accepted from the caller; it is
// derived from Start plus the effective duration.
type Request struct {
	BarberID  int64
	ServiceID int64

	ClientName      string
	ClientPhoneE164 *string

	Start time.Time

	// Optional per-appointment overrides
	DurationOverrideMin   *int
	PriceOverrideCentavos *int

	Notes *string
}

// Response the created cita
type Response struct {
	ID        int64
	BarberID  int64
	ServiceID int64

	ClientName      string
	ClientPhoneE164 *string

	Start  time.Time
	End    time.Time
	Status string

	DurationMin   int
	PriceCentavos int

	ServiceName string
	Notes       *string

	CreatedAt time.Time
}

func toResponse(a *domain.Appointment, durationMin, priceCentavos int) *Response {
	return &Response{
		ID:              a.ID,
		BarberID:        a.BarberID,
		ServiceID:       a.ServiceID,
		ClientName:      a.ClientName,
		ClientPhoneE164: a.ClientPhoneE164,
		Start:           a.Start,
		End:             a.End,
		Status:          string(a.Status),
		DurationMin:     durationMin,
		PriceCentavos:   priceCentavos,
		ServiceName:     a.ServiceName,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}
