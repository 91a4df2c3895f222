package update_appointment

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// Request partial update of a scheduled cita. Nil fields stay unchanged.
// The end never comes from the caller; any change to start or duration
// recomputes it.
type Request struct {
	ID int64

	ClientName      *string
	ClientPhoneE164 *string

	Start *time.Time

	DurationOverrideMin   *int
	PriceOverrideCentavos *int

	Notes *string
}

// Response the cita after the update
type Response struct {
	ID        int64
	BarberID  int64
	ServiceID int64

	ClientName      string
	ClientPhoneE164 *string

	Start  time.Time
	End    time.Time
	Status string

	DurationMin int

	ServiceName string
	Notes       *string

	UpdatedAt *time.Time
}

func toResponse(a *domain.Appointment, durationMin int) *Response {
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
		ServiceName:     a.ServiceName,
		Notes:           a.Notes,
		UpdatedAt:       a.UpdatedAt,
	}
}
