package get_available_slots

import (
	"time"

	"github.com/glamtime/SalonBookingService/pkg/types"
)

// Request is the availability query.
type Request struct {
	ServiceID  int64      // service to book
	OperatorID *int64     // optional: pin a specific operator
	Date       time.Time  // calendar date (time part ignored)
}

// Response is the ordered list of bookable slots.
type Response struct {
	Date       time.Time
	ServiceID  int64
	OperatorID *int64
	Slots      []Slot
}

// Slot is one bookable time unit. AvailableOperators reports how many
// qualified operators are still free at this time; zero-availability
// slots are omitted from the response.
type Slot struct {
	StartTime          types.TimeString
	DurationMinutes    int
	AvailableOperators int
	TotalOperators     int
}
