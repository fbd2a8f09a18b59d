package create_appointment

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrOperatorNotFound is returned when the requested operator does not exist
	ErrOperatorNotFound = errors.New("create_appointment: operator not found")

	// ErrOperatorNotQualified is returned when the operator does not perform the service
	ErrOperatorNotQualified = errors.New("create_appointment: operator does not perform this service")

	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrSlotTaken is returned when the slot is occupied at commit time.
	// The caller must refresh availability and pick another slot; the
	// usecase never retries the booking on its own.
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrPastTime is returned when the requested start is not strictly in the future
	ErrPastTime = errors.New("create_appointment: start time is in the past")

	// ErrInvalidTimeSlot is returned when the start does not match the slot layout
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrAccessDenied is returned when the actor may not book for this client
	ErrAccessDenied = errors.New("create_appointment: access denied")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("create_appointment: internal error")
)
