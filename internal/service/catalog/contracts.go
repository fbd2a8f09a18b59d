package catalog

import (
	"context"

	"github.com/glamtime/SalonBookingService/internal/domain"
)

// ServiceRepository is the services catalog repository interface.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// OperatorRepository is the operators repository interface.
type OperatorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Operator, error)
	List(ctx context.Context, serviceID *int64) ([]*domain.Operator, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
