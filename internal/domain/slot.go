package domain

import (
	"time"

	"github.com/glamtime/SalonBookingService/pkg/types"
)

// Slot represents one bookable time unit. It is a computation artifact:
// recomputed on every availability query, never persisted, no identity.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndTime returns the exclusive end of the slot.
func (s Slot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// IsFutureStart reports whether a slot starting at start on date begins
// strictly after now. Request dates carry no meaningful location while
// the clock runs in the host zone, so the comparison uses calendar
// components and wall-clock time, never instants.
func IsFutureStart(date time.Time, start types.TimeString, now time.Time) bool {
	dy, dm, dd := date.Date()
	ny, nm, nd := now.Date()

	switch {
	case dy != ny:
		return dy > ny
	case dm != nm:
		return dm > nm
	case dd != nd:
		return dd > nd
	}

	return start.IsAfter(types.NewTimeString(now))
}
