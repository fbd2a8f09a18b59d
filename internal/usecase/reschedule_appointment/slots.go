package reschedule_appointment

import (
	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// generateTimeSlots produces the canonical slot layout for one day:
// back-to-back slots inside each working window, nothing spanning into
// the break or past closing.
func generateTimeSlots(hours domain.BusinessHours, durationMinutes int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	slots, err := layoutWindow(slots, hours.OpenTime, hours.BreakStart, durationMinutes)
	if err != nil {
		return nil, err
	}

	slots, err = layoutWindow(slots, hours.BreakEnd, hours.CloseTime, durationMinutes)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func layoutWindow(slots []types.TimeString, start, end types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	current := start

	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(end) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}
