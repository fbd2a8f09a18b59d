package domain

import "github.com/glamtime/SalonBookingService/pkg/types"

// BusinessHours describes the salon's daily working window and the
// blocked break interval. The same window applies to every weekday.
type BusinessHours struct {
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	BreakStart types.TimeString
	BreakEnd   types.TimeString
}

// DefaultBusinessHours returns the standard salon schedule:
// 08:00-18:00 with a 12:00-13:00 lunch break.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenTime:   types.TimeString(DefaultOpenTime),
		CloseTime:  types.TimeString(DefaultCloseTime),
		BreakStart: types.TimeString(DefaultBreakStart),
		BreakEnd:   types.TimeString(DefaultBreakEnd),
	}
}

// Validate checks the window is well-formed: open before close and the
// break interval, when present, contained within the working window.
func (h BusinessHours) Validate() error {
	for _, t := range []types.TimeString{h.OpenTime, h.CloseTime, h.BreakStart, h.BreakEnd} {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	if !h.OpenTime.IsBefore(h.CloseTime) {
		return ErrInvalidBusinessHours
	}
	if !h.BreakStart.IsBefore(h.BreakEnd) {
		return ErrInvalidBusinessHours
	}
	if h.BreakStart.IsBefore(h.OpenTime) || h.BreakEnd.IsAfter(h.CloseTime) {
		return ErrInvalidBusinessHours
	}
	return nil
}
