package reschedule_appointment

import (
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// Request moves an existing appointment to a new service/date/time.
// The old record is cancelled and a new one created in a single
// transaction; an in-place time edit never happens.
type Request struct {
	ActorID       int64
	AppointmentID int64
	NewServiceID  int64
	NewOperatorID *int64
	NewDate       time.Time
	NewStartTime  types.TimeString
}

// Response is the replacement appointment.
type Response struct {
	ID              int64
	ClientID        int64
	ServiceID       int64
	OperatorID      int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	ServiceName  string
	ServicePrice float64

	// PreviousAppointmentID references the cancelled record,
	// preserving the audit trail.
	PreviousAppointmentID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(a *domain.Appointment, previousID int64) *Response {
	return &Response{
		ID:                    a.ID,
		ClientID:              a.ClientID,
		ServiceID:             a.ServiceID,
		OperatorID:            a.OperatorID,
		AppointmentDate:       a.AppointmentDate,
		StartTime:             a.StartTime,
		DurationMinutes:       a.DurationMinutes,
		Status:                string(a.Status),
		ServiceName:           a.ServiceName,
		ServicePrice:          a.ServicePrice,
		PreviousAppointmentID: previousID,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}
