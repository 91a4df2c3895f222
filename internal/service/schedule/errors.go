package schedule

import "errors"

var (
	// ErrBarberNotFound returned when the schedule owner does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrEntriesOverlap returned when two entries of the same day collide
	ErrEntriesOverlap = errors.New("schedule entries overlap")

	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on unexpected repository failures
	ErrInternal = errors.New("service: internal error")
)
