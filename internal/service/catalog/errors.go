package catalog

import "errors"

var (
	// ErrBarberNotFound returned when the barbero does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInternal returned on unexpected repository failures
	ErrInternal = errors.New("service: internal error")
)
