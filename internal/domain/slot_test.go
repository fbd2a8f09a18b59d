package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/pkg/types"
)

func TestSlotEndTime(t *testing.T) {
	end, err := Slot{StartTime: "09:00", DurationMinutes: 90}.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), end)

	end, err = Slot{StartTime: "23:00", DurationMinutes: 60}.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("24:00"), end, "day end is exclusive")
}

func TestIsFutureStart(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		start  types.TimeString
		now    time.Time
		future bool
	}{
		{
			name:   "later same day",
			start:  "11:00",
			now:    time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
			future: true,
		},
		{
			name:   "exact start has begun",
			start:  "10:00",
			now:    time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			future: false,
		},
		{
			name:   "previous day",
			start:  "17:00",
			now:    time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			future: false,
		},
		{
			name:   "next day late evening",
			start:  "08:00",
			now:    time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC),
			future: true,
		},
		{
			name:   "clock ahead of UTC sees the slot as started",
			start:  "10:00",
			now:    time.Date(2025, 3, 10, 10, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
			future: false,
		},
		{
			name:   "clock behind UTC keeps the slot open",
			start:  "10:00",
			now:    time.Date(2025, 3, 10, 9, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
			future: true,
		},
		{
			name:   "same day across zones is compared by components",
			start:  "08:00",
			now:    time.Date(2025, 3, 10, 7, 0, 0, 0, time.FixedZone("UTC+13", 13*60*60)),
			future: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.future, IsFutureStart(date, tc.start, tc.now))
		})
	}
}

func TestAppointmentStartsAfter(t *testing.T) {
	appt := &Appointment{
		AppointmentDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
	}

	assert.True(t, appt.StartsAfter(time.Date(2025, 3, 10, 8, 59, 0, 0, time.UTC)))
	assert.False(t, appt.StartsAfter(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)), "exact start has begun")
	assert.False(t, appt.StartsAfter(time.Date(2025, 3, 10, 9, 1, 0, 0, time.FixedZone("UTC+3", 3*60*60))))
}
