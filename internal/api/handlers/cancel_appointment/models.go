package cancel_appointment

import (
	"github.com/glamtime/SalonBookingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service request.
func (r *CancelAppointmentRequest) ToServiceRequest(actorID int64) *models.CancelAppointmentRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelAppointmentRequest{
		ActorID:            actorID,
		CancellationReason: reason,
	}
}
