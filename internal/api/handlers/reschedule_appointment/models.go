package reschedule_appointment

import (
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	rescheduleAppointment "github.com/glamtime/SalonBookingService/internal/usecase/reschedule_appointment"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	ServiceID  int64  `json:"serviceId"`
	OperatorID *int64 `json:"operatorId,omitempty"`
	Date       string `json:"date"`      // "2025-03-10"
	StartTime  string `json:"startTime"` // "10:00"
}

// RescheduledAppointmentResponse HTTP response model
type RescheduledAppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ServiceID       int64   `json:"serviceId"`
	OperatorID      int64   `json:"operatorId"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`

	PreviousAppointmentID int64 `json:"previousAppointmentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase request.
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(actorID, appointmentID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		ActorID:       actorID,
		AppointmentID: appointmentID,
		NewServiceID:  r.ServiceID,
		NewOperatorID: r.OperatorID,
		NewDate:       date,
		NewStartTime:  types.TimeString(r.StartTime),
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduledAppointmentResponse {
	return &RescheduledAppointmentResponse{
		ID:                    resp.ID,
		ClientID:              resp.ClientID,
		ServiceID:             resp.ServiceID,
		OperatorID:            resp.OperatorID,
		AppointmentDate:       resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:             resp.StartTime.String(),
		DurationMinutes:       resp.DurationMinutes,
		Status:                resp.Status,
		ServiceName:           resp.ServiceName,
		ServicePrice:          resp.ServicePrice,
		PreviousAppointmentID: resp.PreviousAppointmentID,
		CreatedAt:             resp.CreatedAt,
		UpdatedAt:             resp.UpdatedAt,
	}
}
