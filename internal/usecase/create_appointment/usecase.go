package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/SalonBookingService/internal/auth"
	"github.com/glamtime/SalonBookingService/internal/domain"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	operatorRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/operator"
	serviceRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/service"
	userRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/user"
	"github.com/glamtime/SalonBookingService/pkg/ptr"
)

// UseCase books an appointment, guarding against double-booking.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	operatorRepo    OperatorRepository
	userRepo        UserRepository
	authorizer      Authorizer
	txManager       TransactionManager
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	operatorRepo OperatorRepository,
	userRepo UserRepository,
	authorizer Authorizer,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		operatorRepo:    operatorRepo,
		userRepo:        userRepo,
		authorizer:      authorizer,
		txManager:       txManager,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the requested slot. Availability shown to the user is a
// snapshot that may be stale, so the decisive conflict check happens
// here, inside a serializable transaction that re-reads the day's
// appointments with a row lock. The partial unique index on
// (operator, date, start time) backs the check at the storage level:
// even two bookings racing outside this process cannot both commit.
//
// On any failure nothing is written; ErrSlotTaken instructs the caller
// to refresh availability and choose another slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: actor=%d, client=%d, service=%d, operator=%v, date=%s, time=%s",
		req.ActorID, req.ClientID, req.ServiceID, req.OperatorID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	if err := uc.authorizer.EnsureAdminOrOwner(ctx, req.ActorID, req.ClientID); err != nil {
		if errors.Is(err, auth.ErrAccessDenied) || errors.Is(err, auth.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: actor=%d may not book for client=%d", req.ActorID, req.ClientID)
			return nil, ErrAccessDenied
		}
		uc.logger.Error("CreateAppointment: authorization failed: %v", err)
		return nil, fmt.Errorf("%w: authorization failed: %v", ErrInternal, err)
	}

	// An admin booking on a client's behalf names a client the actor
	// check never touched; verify that client exists.
	if req.ClientID != req.ActorID {
		if _, err := uc.userRepo.GetByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	now := uc.timeProvider.Now()

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateFutureStart(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: past-time guard rejected %s %s: %v",
			req.Date.Format(domain.DateFormat), req.StartTime, err)
		return nil, err
	}

	slots, err := generateTimeSlots(uc.hours, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to generate slot layout: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot layout: %v", ErrInternal, err)
	}

	if err := validateSlotAlignment(req.StartTime, slots); err != nil {
		uc.logger.Warn("CreateAppointment: start time %s does not match slot layout", req.StartTime)
		return nil, err
	}

	candidates, err := uc.resolveCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Re-read the day's occupying appointments under a row lock:
		// the availability snapshot the client saw may be stale.
		filter := domain.AppointmentsFilter{
			Date:          ptr.Ptr(req.Date),
			OccupyingOnly: true,
		}

		appointments, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		slot := domain.Slot{StartTime: req.StartTime, DurationMinutes: service.DurationMinutes}

		operator, err := uc.pickFreeOperator(candidates, slot, appointments)
		if err != nil {
			return err
		}

		appt := &domain.Appointment{
			ClientID:        req.ClientID,
			ServiceID:       req.ServiceID,
			OperatorID:      operator.ID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique constraint rejected operator=%d, date=%s, time=%s",
					operator.ID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, operator=%d", result.ID, result.OperatorID)

	return fromDomain(result), nil
}

// resolveCandidates loads the operators eligible for this booking: the
// pinned one (verified to perform the service) or every qualified one.
func (uc *UseCase) resolveCandidates(ctx context.Context, req *Request) ([]*domain.Operator, error) {
	if req.OperatorID != nil {
		op, err := uc.operatorRepo.GetByID(ctx, *req.OperatorID)
		if err != nil {
			if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
				uc.logger.Warn("CreateAppointment: operator id=%d not found", *req.OperatorID)
				return nil, ErrOperatorNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get operator id=%d: %v", *req.OperatorID, err)
			return nil, fmt.Errorf("%w: failed to get operator: %v", ErrInternal, err)
		}

		if !op.CanPerform(req.ServiceID) {
			uc.logger.Warn("CreateAppointment: operator id=%d does not perform service id=%d",
				*req.OperatorID, req.ServiceID)
			return nil, ErrOperatorNotQualified
		}

		return []*domain.Operator{op}, nil
	}

	operators, err := uc.operatorRepo.List(ctx, ptr.Ptr(req.ServiceID))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list operators for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list operators: %v", ErrInternal, err)
	}

	return operators, nil
}

// pickFreeOperator selects the first candidate without an overlapping
// occupying appointment at the requested time. No free candidate means
// the slot is taken.
func (uc *UseCase) pickFreeOperator(
	candidates []*domain.Operator,
	slot domain.Slot,
	appointments []*domain.Appointment,
) (*domain.Operator, error) {
	for _, op := range candidates {
		busy, err := operatorBusy(op.ID, slot, appointments)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check operator availability: %v", ErrInternal, err)
		}
		if !busy {
			return op, nil
		}
	}

	uc.logger.Warn("CreateAppointment: no free operator among %d candidates at %s", len(candidates), slot.StartTime)
	return nil, ErrSlotTaken
}
