package barber

import "errors"

var (
	// ErrBarberNotFound returned when no barbero matches the given id
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	// ErrBuildQuery returned when the SQL statement cannot be built
	ErrBuildQuery = errors.New("barber.repository: failed to build query")

	// ErrExecQuery returned when the SQL statement fails to execute
	ErrExecQuery = errors.New("barber.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("barber.repository: failed to scan row")
)
