package appointment

import "errors"

var (
	// ErrAppointmentNotFound returned when no cita matches the given id
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery returned when the SQL statement cannot be built
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery returned when the SQL statement fails to execute
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
