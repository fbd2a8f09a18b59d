package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the salon service is not found
	ErrServiceNotFound = errors.New("service not found")

	// ErrOperatorNotFound is returned when the operator is not found
	ErrOperatorNotFound = errors.New("operator not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("catalog: internal error")
)
