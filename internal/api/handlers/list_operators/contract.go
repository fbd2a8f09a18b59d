package list_operators

import (
	"context"

	"github.com/glamtime/SalonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListOperators(ctx context.Context, serviceID *int64) (*models.OperatorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
