package create_appointment

import (
	"fmt"
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// validateRequest validates the booking intent before any store access.
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.OperatorID != nil && *req.OperatorID <= 0 {
		return fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateFutureStart enforces the past-time guard: the appointment must
// begin strictly after now, compared at full date and time-of-day
// precision on the wall clock.
func validateFutureStart(date time.Time, startTime types.TimeString, now time.Time) error {
	if !domain.IsFutureStart(date, startTime, now) {
		return ErrPastTime
	}

	return nil
}

// validateSlotAlignment checks that the requested start matches the
// canonical slot layout for the service duration.
func validateSlotAlignment(startTime types.TimeString, slots []types.TimeString) error {
	for _, slot := range slots {
		if slot.Equal(startTime) {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}

// operatorBusy reports whether the operator has an occupying appointment
// overlapping the slot interval. Boundary-touching appointments do not
// conflict.
func operatorBusy(operatorID int64, slot domain.Slot, appointments []*domain.Appointment) (bool, error) {
	slotEnd, err := slot.EndTime()
	if err != nil {
		return false, err
	}

	for _, appt := range appointments {
		if appt.OperatorID != operatorID || !appt.OccupiesSlot() {
			continue
		}

		apptEnd, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			continue
		}

		if appt.StartTime.IsBefore(slotEnd) && apptEnd.IsAfter(slot.StartTime) {
			return true, nil
		}
	}

	return false, nil
}
