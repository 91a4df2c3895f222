package domain

import "time"

// AppointmentStatus estado of an appointment (stored as text, Spanish values
// kept from the original data model)
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "AGENDADA"
	StatusCancelled AppointmentStatus = "CANCELADA"
	StatusCompleted AppointmentStatus = "COMPLETADA"
)

// ValidStatus reports whether s is one of the known appointment states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment represents a cita for a barber and a catalog service.
// End is always derived from Start plus the effective duration; it is never
// set independently.
type Appointment struct {
	ID        int64
	BarberID  int64
	ServiceID int64

	ClientName      string
	ClientPhoneE164 *string

	Start  time.Time
	End    time.Time
	Status AppointmentStatus

	// Per-appointment overrides; when nil the service defaults apply
	DurationOverrideMin   *int
	PriceOverrideCentavos *int

	Notes *string

	// Denormalized for list/summary views
	ServiceName string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// IsScheduled reports whether the appointment still blocks availability.
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsClosed reports whether the appointment reached a terminal state.
func (a *Appointment) IsClosed() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// CanTransitionTo reports whether the status change is allowed. Scheduled
// appointments may be cancelled or completed; closed ones never reopen.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.IsClosed() {
		return false
	}
	return next == StatusCancelled || next == StatusCompleted
}

// Window returns the appointment interval as a half-open TimeWindow.
func (a *Appointment) Window() TimeWindow {
	return TimeWindow{Start: a.Start, End: a.End}
}

// EffectiveDurationMin resolves the appointment duration: a positive override
// wins, then the service duration, then the fallback minimum.
func EffectiveDurationMin(override *int, serviceDurationMin int) int {
	if override != nil && *override > 0 {
		return *override
	}
	if serviceDurationMin > 0 {
		return serviceDurationMin
	}
	return FallbackDurationMin
}

// EffectivePriceCentavos resolves the appointment price: override wins over
// the service price.
func EffectivePriceCentavos(override *int, servicePriceCentavos int) int {
	if override != nil {
		return *override
	}
	return servicePriceCentavos
}

// AppointmentsFilter filter for paged appointment listings. Range bounds are
// required; barber and status are optional.
type AppointmentsFilter struct {
	BarberID *int64
	Status   *AppointmentStatus
	From     time.Time
	To       time.Time
	Page     int
	PageSize int
}
