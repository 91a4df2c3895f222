package domain

import "time"

// Block explicit unavailability interval declared by a barber (time off).
// Blocks never expire on their own; they are managed via CRUD only.
type Block struct {
	ID       int64
	BarberID int64
	Start    time.Time
	End      time.Time
	Reason   *string

	CreatedAt time.Time
}

// IsValid reports whether the block has positive duration.
func (b *Block) IsValid() bool {
	return b.Start.Before(b.End)
}

// Window returns the block interval as a half-open TimeWindow.
func (b *Block) Window() TimeWindow {
	return TimeWindow{Start: b.Start, End: b.End}
}
