package get_schedule

import (
	"context"

	"github.com/glamtime/SalonBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
