package get_available_slots

import (
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// generateTimeSlots produces the canonical slot layout for one day:
// back-to-back slots at durationMinutes granularity inside each working
// window (before and after the break). A slot that would extend past the
// window end is dropped, so no slot ever spans into the break or past
// closing time. Pure and deterministic; the result is ascending.
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

// layoutWindow appends back-to-back slots filling [start, end).
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

// filterPastSlots removes slots that have already started. For dates
// before today everything is past; for today the exact slot start is
// compared against now's wall clock; future dates pass through untouched.
func filterPastSlots(slots []types.TimeString, date time.Time, now time.Time) []types.TimeString {
	upcoming := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if domain.IsFutureStart(date, slot, now) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming
}

// calculateSlotCapacity resolves, for every slot, how many of the given
// operators are free of overlapping occupying appointments. Slots where
// no operator is free are dropped.
func calculateSlotCapacity(
	slots []types.TimeString,
	durationMinutes int,
	operators []*domain.Operator,
	appointments []*domain.Appointment,
) []Slot {
	result := make([]Slot, 0, len(slots))

	for _, slotStart := range slots {
		candidate := domain.Slot{StartTime: slotStart, DurationMinutes: durationMinutes}

		free := 0
		for _, op := range operators {
			if !operatorBusy(op.ID, candidate, appointments) {
				free++
			}
		}

		if free == 0 {
			continue
		}

		result = append(result, Slot{
			StartTime:          slotStart,
			DurationMinutes:    durationMinutes,
			AvailableOperators: free,
			TotalOperators:     len(operators),
		})
	}

	return result
}

// operatorBusy reports whether the operator has an occupying appointment
// overlapping the slot interval. Strict inequalities: appointments that
// merely touch the slot boundary do not block it.
func operatorBusy(operatorID int64, slot domain.Slot, appointments []*domain.Appointment) bool {
	slotEnd, err := slot.EndTime()
	if err != nil {
		return false
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
			return true
		}
	}

	return false
}
