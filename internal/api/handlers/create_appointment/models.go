package create_appointment

import (
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	createAppointment "github.com/glamtime/SalonBookingService/internal/usecase/create_appointment"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model. ClientID is optional:
// when omitted the appointment is booked for the authenticated user.
type CreateAppointmentRequest struct {
	ClientID   *int64 `json:"clientId,omitempty"`
	ServiceID  int64  `json:"serviceId"`
	OperatorID *int64 `json:"operatorId,omitempty"`
	Date       string `json:"date"`      // "2025-03-10"
	StartTime  string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase request.
func (r *CreateAppointmentRequest) ToUseCaseRequest(actorID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	clientID := actorID
	if r.ClientID != nil {
		clientID = *r.ClientID
	}

	return &createAppointment.Request{
		ActorID:    actorID,
		ClientID:   clientID,
		ServiceID:  r.ServiceID,
		OperatorID: r.OperatorID,
		Date:       date,
		StartTime:  types.TimeString(r.StartTime),
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		OperatorID:      resp.OperatorID,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
