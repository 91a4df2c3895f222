package blocks

import "errors"

var (
	// ErrBlockNotFound returned when the bloqueo does not exist
	ErrBlockNotFound = errors.New("block not found")

	// ErrBarberNotFound returned when the block owner does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrBlockOverlap returned when the interval overlaps another bloqueo
	ErrBlockOverlap = errors.New("block overlaps an existing block")

	// ErrAppointmentConflict returned when the interval covers scheduled citas
	ErrAppointmentConflict = errors.New("block overlaps scheduled appointments")

	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on unexpected repository failures
	ErrInternal = errors.New("service: internal error")
)
