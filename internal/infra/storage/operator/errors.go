package operator

import "errors"

var (
	// ErrOperatorNotFound is returned when the operator does not exist
	ErrOperatorNotFound = errors.New("operator.repository: operator not found")

	// ErrBuildQuery is returned when an SQL query cannot be built
	ErrBuildQuery = errors.New("operator.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute
	ErrExecQuery = errors.New("operator.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("operator.repository: failed to scan row")
)
