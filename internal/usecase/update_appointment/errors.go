package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound returned when no cita matches the given id
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAppointmentClosed returned when the cita is cancelled or completed
	ErrAppointmentClosed = errors.New("update_appointment: appointment is closed")

	// ErrServiceNotFound returned when the cita references a service that is gone
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrSlotConflict returned when the new interval overlaps another cita
	ErrSlotConflict = errors.New("update_appointment: time slot already taken")

	// ErrInvalidInput returned when a field is malformed
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal returned on unexpected repository failures
	ErrInternal = errors.New("update_appointment: internal error")
)
