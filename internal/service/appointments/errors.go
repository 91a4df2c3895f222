package appointments

import "errors"

var (
	// ErrAppointmentNotFound returned when the cita does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus returned when the requested estado is unknown
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition returned when the state machine forbids the change
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on unexpected repository failures
	ErrInternal = errors.New("service: internal error")
)
