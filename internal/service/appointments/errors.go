package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment is not found
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when the actor has no rights for the operation
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the appointment is completed and
	// therefore cannot be cancelled
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotComplete is returned when the appointment is not in the
	// scheduled state
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrInvalidStatus is returned for an unknown status filter value
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("service: internal error")
)
