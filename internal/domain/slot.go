package domain

import "time"

// Slot a concrete bookable {start, end} pair whose duration equals the
// requested service duration
type Slot struct {
	Start time.Time
	End   time.Time
}

// Window returns the slot as a half-open TimeWindow.
func (s Slot) Window() TimeWindow {
	return TimeWindow{Start: s.Start, End: s.End}
}
