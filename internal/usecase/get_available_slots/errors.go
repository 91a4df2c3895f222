package get_available_slots

import "errors"

var (
	// ErrBarberNotFound returned when the requested barber does not exist
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrServiceNotFound returned when the requested service does not exist
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal returned on unexpected repository or conversion failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
