package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/SalonBookingService/internal/domain"
	operatorRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/operator"
	serviceRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/service"
	"github.com/glamtime/SalonBookingService/pkg/ptr"
)

// UseCase computes the bookable slots for a service on a date.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	operatorRepo    OperatorRepository
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	operatorRepo OperatorRepository,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		operatorRepo:    operatorRepo,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute resolves the availability query:
// generate the day's canonical slots from the service duration, drop
// slots already started (same-day, wall-clock comparison) and
// slots where no qualified operator remains free.
//
// Availability is recomputed from a fresh store read on every call;
// nothing is cached between requests. An empty slot list is a valid
// result, not an error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, operator=%v, date=%s",
		req.ServiceID, req.OperatorID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	operators, err := uc.resolveOperators(ctx, req)
	if err != nil {
		return nil, err
	}

	timeSlots, err := generateTimeSlots(uc.hours, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	timeSlots = filterPastSlots(timeSlots, req.Date, now)

	filter := domain.AppointmentsFilter{
		Date:          ptr.Ptr(req.Date),
		OperatorID:    req.OperatorID,
		OccupyingOnly: true,
	}

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots := calculateSlotCapacity(timeSlots, service.DurationMinutes, operators, appointments)

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		ServiceID:  req.ServiceID,
		OperatorID: req.OperatorID,
		Slots:      slots,
	}, nil
}

// resolveOperators loads the operators the availability is computed over:
// the pinned operator (verified to perform the service) or every operator
// qualified for it.
func (uc *UseCase) resolveOperators(ctx context.Context, req *Request) ([]*domain.Operator, error) {
	if req.OperatorID != nil {
		op, err := uc.operatorRepo.GetByID(ctx, *req.OperatorID)
		if err != nil {
			if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
				uc.logger.Warn("GetAvailableSlots: operator id=%d not found", *req.OperatorID)
				return nil, ErrOperatorNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get operator id=%d: %v", *req.OperatorID, err)
			return nil, fmt.Errorf("%w: failed to get operator: %v", ErrInternal, err)
		}

		if !op.CanPerform(req.ServiceID) {
			uc.logger.Warn("GetAvailableSlots: operator id=%d does not perform service id=%d",
				*req.OperatorID, req.ServiceID)
			return nil, ErrOperatorNotQualified
		}

		return []*domain.Operator{op}, nil
	}

	operators, err := uc.operatorRepo.List(ctx, ptr.Ptr(req.ServiceID))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list operators for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list operators: %v", ErrInternal, err)
	}

	return operators, nil
}
