package catalog

import "errors"

var (
	// ErrServiceNotFound returned when no servicio matches the given id
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery returned when the SQL statement cannot be built
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery returned when the SQL statement fails to execute
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
