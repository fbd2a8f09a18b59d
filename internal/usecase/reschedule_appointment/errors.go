package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrServiceNotFound is returned when the new service does not exist
	ErrServiceNotFound = errors.New("reschedule_appointment: service not found")

	// ErrOperatorNotFound is returned when the requested operator does not exist
	ErrOperatorNotFound = errors.New("reschedule_appointment: operator not found")

	// ErrOperatorNotQualified is returned when the operator does not perform the service
	ErrOperatorNotQualified = errors.New("reschedule_appointment: operator does not perform this service")

	// ErrNotReschedulable is returned when the appointment is not in the
	// scheduled state (completed and cancelled are terminal)
	ErrNotReschedulable = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrAlreadyStarted is returned when the appointment's start time is
	// not in the future at the moment of rescheduling
	ErrAlreadyStarted = errors.New("reschedule_appointment: appointment has already started")

	// ErrSlotTaken is returned when the target slot is occupied; the old
	// appointment is left untouched
	ErrSlotTaken = errors.New("reschedule_appointment: target slot is already taken")

	// ErrPastTime is returned when the target start is not strictly in the future
	ErrPastTime = errors.New("reschedule_appointment: target start time is in the past")

	// ErrInvalidTimeSlot is returned when the target start does not match the slot layout
	ErrInvalidTimeSlot = errors.New("reschedule_appointment: invalid time slot")

	// ErrAccessDenied is returned when the actor may not reschedule this appointment
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
