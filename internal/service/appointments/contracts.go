package appointments

import (
	"context"

	"github.com/glamtime/SalonBookingService/internal/domain"
)

// AppointmentRepository is the appointments repository interface.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Authorizer performs role checks for privileged operations.
type Authorizer interface {
	EnsureAdmin(ctx context.Context, actorID int64) error
	EnsureAdminOrOwner(ctx context.Context, actorID, ownerID int64) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
