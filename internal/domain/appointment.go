package domain

import (
	"time"

	"github.com/glamtime/SalonBookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client's booking of a service with an operator.
// At most one scheduled appointment may exist per (operator, date, start time);
// the store enforces this with a partial unique index.
type Appointment struct {
	ID              int64
	ClientID        int64
	ServiceID       int64
	OperatorID      int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment is still live.
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsTerminal returns true if the appointment is in a terminal state.
// No transition leaves a terminal state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesSlot returns true if the appointment makes its slot unavailable.
// Cancelled appointments free the slot; scheduled and completed ones keep it.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusScheduled || a.Status == StatusCompleted
}

// CanBeCancelled returns true if a cancel transition is allowed.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted returns true if a complete transition is allowed.
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusScheduled
}

// StartsAfter returns true if the appointment begins strictly after t.
// Wall-clock comparison: the stored date and the clock may carry
// different locations.
func (a *Appointment) StartsAfter(t time.Time) bool {
	return IsFutureStart(a.AppointmentDate, a.StartTime, t)
}

// AppointmentsFilter is the tagged filter structure for listing appointments.
// Nil fields mean "no constraint".
type AppointmentsFilter struct {
	ClientID   *int64
	OperatorID *int64
	ServiceID  *int64
	Date       *time.Time
	Status     *AppointmentStatus
	// OccupyingOnly restricts the result to appointments that hold their
	// slot (scheduled or completed), regardless of Status.
	OccupyingOnly bool
}
