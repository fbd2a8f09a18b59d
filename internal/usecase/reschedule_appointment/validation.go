package reschedule_appointment

import (
	"fmt"

	"github.com/glamtime/SalonBookingService/internal/domain"
)

// validateRequest validates the reschedule intent before any store access.
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.NewServiceID <= 0 {
		return fmt.Errorf("%w: newServiceID must be positive", ErrInvalidInput)
	}

	if req.NewOperatorID != nil && *req.NewOperatorID <= 0 {
		return fmt.Errorf("%w: newOperatorID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	return nil
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
