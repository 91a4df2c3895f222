package schedule

import "errors"

var (
	// ErrBuildQuery returned when the SQL statement cannot be built
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery returned when the SQL statement fails to execute
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
