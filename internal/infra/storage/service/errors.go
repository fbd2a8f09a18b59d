package service

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery is returned when an SQL query cannot be built
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
