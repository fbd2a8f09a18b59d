package create_appointment

import (
	"context"
	"time"

	"github.com/glamtime/SalonBookingService/internal/domain"
)

// AppointmentRepository is the appointments repository interface.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ServiceRepository is the services catalog repository interface.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// OperatorRepository is the operators repository interface.
type OperatorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Operator, error)
	List(ctx context.Context, serviceID *int64) ([]*domain.Operator, error)
}

// UserRepository resolves clients booked on behalf of.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Authorizer performs role checks for privileged operations.
type Authorizer interface {
	EnsureAdminOrOwner(ctx context.Context, actorID, ownerID int64) error
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
