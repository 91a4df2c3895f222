package availability

import "errors"

var (
	// ErrBarberNotFound returned when the queried barber does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound returned when no service can anchor the summary
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on unexpected downstream failures
	ErrInternal = errors.New("service: internal error")
)
