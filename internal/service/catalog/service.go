package catalog

import (
	"context"
	"errors"
	"fmt"

	operatorRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/operator"
	serviceRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/service"
	"github.com/glamtime/SalonBookingService/internal/service/catalog/models"
)

// Service exposes the public salon catalog: services and the operators
// who perform them.
type Service struct {
	serviceRepo  ServiceRepository
	operatorRepo OperatorRepository
	logger       Logger
}

// NewService creates a new catalog service.
func NewService(
	serviceRepo ServiceRepository,
	operatorRepo OperatorRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		operatorRepo: operatorRepo,
		logger:       logger,
	}
}

// ListServices returns all salon services ordered by name.
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetService returns one salon service.
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetService: fetching service id=%d", id)

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// ListOperators returns operators, optionally narrowed to those
// qualified for one service.
func (s *Service) ListOperators(ctx context.Context, serviceID *int64) (*models.OperatorListResponse, error) {
	s.logger.Info("ListOperators: fetching operators, service=%v", serviceID)

	if serviceID != nil && *serviceID <= 0 {
		return nil, fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	operators, err := s.operatorRepo.List(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListOperators: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOperators - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOperators: fetched %d operators", len(operators))
	return models.FromDomainOperatorList(operators), nil
}

// GetOperator returns one operator.
func (s *Service) GetOperator(ctx context.Context, id int64) (*models.OperatorResponse, error) {
	s.logger.Info("GetOperator: fetching operator id=%d", id)

	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			s.logger.Warn("GetOperator: operator id=%d not found", id)
			return nil, ErrOperatorNotFound
		}
		s.logger.Error("GetOperator: repository error for operator id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetOperator - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOperator(operator), nil
}
