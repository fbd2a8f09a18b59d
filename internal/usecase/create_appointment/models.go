package create_appointment

import (
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// Request is the booking intent. ActorID is the authenticated user making
// the request; ClientID is the appointment owner (admins may book on a
// client's behalf). When OperatorID is nil the usecase assigns a free
// qualified operator itself.
type Request struct {
	ActorID    int64
	ClientID   int64
	ServiceID  int64
	OperatorID *int64
	Date       time.Time
	StartTime  types.TimeString
}

// Response is the created appointment.
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

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain converts a stored appointment into the usecase response.
func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		OperatorID:      a.OperatorID,
		AppointmentDate: a.AppointmentDate,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
