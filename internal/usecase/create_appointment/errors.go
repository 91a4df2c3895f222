package create_appointment

import "errors"

var (
	// ErrBarberNotFound returned when the target barber does not exist
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound returned when the booked service does not exist
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotConflict returned when the interval overlaps a scheduled cita
	ErrSlotConflict = errors.New("create_appointment: time slot already taken")

	// ErrStartInPast returned when the requested start is behind the clock
	ErrStartInPast = errors.New("create_appointment: start time is in the past")

	// ErrInvalidInput returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal returned on unexpected repository failures
	ErrInternal = errors.New("create_appointment: internal error")
)
