package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrOperatorNotFound is returned when the requested operator does not exist
	ErrOperatorNotFound = errors.New("get_available_slots: operator not found")

	// ErrOperatorNotQualified is returned when the operator does not perform the service
	ErrOperatorNotQualified = errors.New("get_available_slots: operator does not perform this service")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
