package get_operator

import (
	"context"

	"github.com/glamtime/SalonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetOperator(ctx context.Context, id int64) (*models.OperatorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
