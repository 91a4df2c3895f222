package get_available_slots

import (
	"time"

	"github.com/chris030500/Barberia/internal/domain"
)

// Request slot query for one barber, service and calendar date
type Request struct {
	BarberID  int64
	ServiceID int64
	Date      time.Time // calendar date; only Y/M/D are used

	// Optional overrides; non-positive values fall back to defaults
	SlotSizeMin int
	DurationMin int
}

// Response echoed request parameters with effective values plus the computed
// bookable slots, ordered by start time
type Response struct {
	BarberID    int64
	ServiceID   int64
	Date        time.Time
	SlotSizeMin int // effective
	DurationMin int // effective
	Slots       []domain.Slot
}
