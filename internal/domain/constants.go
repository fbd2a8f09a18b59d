package domain

import "errors"

// Default business hours
const (
	DefaultOpenTime   = "08:00"
	DefaultCloseTime  = "18:00"
	DefaultBreakStart = "12:00"
	DefaultBreakEnd   = "13:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ErrInvalidBusinessHours is returned for a malformed working-day window
var ErrInvalidBusinessHours = errors.New("domain: invalid business hours")

// OccupyingStatuses lists the statuses in which an appointment holds
// its slot. Used when collecting taken start times.
var OccupyingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
}
