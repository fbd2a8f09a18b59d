package get_available_slots

import (
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
	getAvailableSlots "github.com/glamtime/SalonBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	ServiceID  int64           `json:"serviceId"`
	OperatorID *int64          `json:"operatorId,omitempty"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot is one bookable time slot.
type AvailableSlot struct {
	StartTime          string `json:"startTime"`
	DurationMinutes    int    `json:"durationMinutes"`
	AvailableOperators int    `json:"availableOperators"`
	TotalOperators     int    `json:"totalOperators"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:          slot.StartTime.String(),
			DurationMinutes:    slot.DurationMinutes,
			AvailableOperators: slot.AvailableOperators,
			TotalOperators:     slot.TotalOperators,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		ServiceID:  resp.ServiceID,
		OperatorID: resp.OperatorID,
		Slots:      slots,
	}
}

// ToUseCaseRequest builds the usecase request from query parameters.
func ToUseCaseRequest(serviceID int64, operatorID *int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID:  serviceID,
		OperatorID: operatorID,
		Date:       date,
	}, nil
}
