package block

import "errors"

var (
	// ErrBlockNotFound returned when no bloqueo matches the given id
	ErrBlockNotFound = errors.New("block.repository: block not found")

	// ErrBuildQuery returned when the SQL statement cannot be built
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery returned when the SQL statement fails to execute
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("block.repository: failed to scan row")
)
