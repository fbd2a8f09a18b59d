package models

import (
	"errors"
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// CancelAppointmentRequest is a request to cancel an appointment.
type CancelAppointmentRequest struct {
	ActorID            int64  `json:"actorId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetClientAppointmentsRequest is a request for a client's appointment history.
type GetClientAppointmentsRequest struct {
	ActorID  int64   `json:"actorId"`
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetScheduleRequest is a request for the salon schedule of one day,
// optionally narrowed to a single operator.
type GetScheduleRequest struct {
	ActorID    int64     `json:"actorId"`
	Date       time.Time `json:"date"`
	OperatorID *int64    `json:"operatorId,omitempty"`
}

// ToDomainFilter converts the request into a repository filter.
func (r *GetScheduleRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		Date:       &r.Date,
		OperatorID: r.OperatorID,
	}
}

// Response models

// AppointmentResponse is the appointment DTO.
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	ServiceID       int64  `json:"serviceId"`
	OperatorID      int64  `json:"operatorId"`
	AppointmentDate string `json:"appointmentDate"` // "2025-03-10"
	StartTime       string `json:"startTime"`       // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Denormalized data for history
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CancelResponse reports the outcome of a cancel request. Changed is
// false when the appointment was already cancelled.
type CancelResponse struct {
	Changed bool `json:"changed"`
}

// Conversion helpers

// FromDomainAppointment converts the domain model into a DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		OperatorID:         a.OperatorID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain models into a DTO.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainStatus converts a string into domain.AppointmentStatus with validation.
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusScheduled,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
