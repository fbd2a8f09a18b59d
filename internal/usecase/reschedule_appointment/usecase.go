package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glamtime/SalonBookingService/internal/auth"
	"github.com/glamtime/SalonBookingService/internal/domain"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	operatorRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/operator"
	serviceRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/service"
	"github.com/glamtime/SalonBookingService/pkg/ptr"
)

// cancellation reason recorded on the retired record
const rescheduleReason = "rescheduled"

// UseCase reschedules an appointment as cancel-old-plus-create-new.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	operatorRepo    OperatorRepository
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
	authorizer Authorizer,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		operatorRepo:    operatorRepo,
		authorizer:      authorizer,
		txManager:       txManager,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute performs the reschedule inside one serializable transaction:
// lock and verify the old appointment, guard the target slot, insert the
// replacement, then cancel the old record. Any failure rolls the whole
// transaction back, so the outcome is always either both writes or
// neither: never two live scheduled appointments, never zero.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: actor=%d, appointment=%d, newService=%d, newDate=%s, newTime=%s",
		req.ActorID, req.AppointmentID, req.NewServiceID,
		req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	service, err := uc.serviceRepo.GetByID(ctx, req.NewServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("RescheduleAppointment: service id=%d not found", req.NewServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get service id=%d: %v", req.NewServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := uc.validateTarget(service, req, now); err != nil {
		return nil, err
	}

	candidates, err := uc.resolveCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		created    *domain.Appointment
		previousID int64
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Lock the old record so its state cannot change underneath us.
		old, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if err := uc.authorizer.EnsureAdminOrOwner(txCtx, req.ActorID, old.ClientID); err != nil {
			if errors.Is(err, auth.ErrAccessDenied) || errors.Is(err, auth.ErrUserNotFound) {
				uc.logger.Warn("RescheduleAppointment: actor=%d may not reschedule appointment id=%d",
					req.ActorID, req.AppointmentID)
				return ErrAccessDenied
			}
			uc.logger.Error("RescheduleAppointment: authorization failed: %v", err)
			return fmt.Errorf("%w: authorization failed: %v", ErrInternal, err)
		}

		if !old.IsScheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d has status=%s", old.ID, old.Status)
			return ErrNotReschedulable
		}

		if !old.StartsAfter(now) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d already started", old.ID)
			return ErrAlreadyStarted
		}

		// Guard the target slot against the current state of the day,
		// ignoring the old record itself (it retires in this transaction).
		filter := domain.AppointmentsFilter{
			Date:          ptr.Ptr(req.NewDate),
			OccupyingOnly: true,
		}

		appointments, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		appointments = excludeAppointment(appointments, old.ID)

		slot := domain.Slot{StartTime: req.NewStartTime, DurationMinutes: service.DurationMinutes}

		operator, err := uc.pickFreeOperator(candidates, slot, appointments)
		if err != nil {
			return err
		}

		replacement := &domain.Appointment{
			ClientID:        old.ClientID,
			ServiceID:       req.NewServiceID,
			OperatorID:      operator.ID,
			AppointmentDate: req.NewDate,
			StartTime:       req.NewStartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
		}

		created, err = uc.appointmentRepo.Create(txCtx, replacement)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleAppointment: unique constraint rejected operator=%d, date=%s, time=%s",
					operator.ID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleAppointment: failed to create replacement: %v", err)
			return fmt.Errorf("%w: failed to create replacement: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.Cancel(txCtx, old.ID, rescheduleReason); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to cancel old appointment id=%d: %v", old.ID, err)
			return fmt.Errorf("%w: failed to cancel old appointment: %v", ErrInternal, err)
		}

		previousID = old.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d replaced by id=%d", previousID, created.ID)

	return fromDomain(created, previousID), nil
}

// validateTarget checks the new slot: strictly in the future on the
// wall clock and aligned with the canonical slot layout for the
// service duration.
func (uc *UseCase) validateTarget(service *domain.Service, req *Request, now time.Time) error {
	if !domain.IsFutureStart(req.NewDate, req.NewStartTime, now) {
		uc.logger.Warn("RescheduleAppointment: target %s %s is in the past",
			req.NewDate.Format(domain.DateFormat), req.NewStartTime)
		return ErrPastTime
	}

	slots, err := generateTimeSlots(uc.hours, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to generate slot layout: %v", err)
		return fmt.Errorf("%w: failed to generate slot layout: %v", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.Equal(req.NewStartTime) {
			return nil
		}
	}

	uc.logger.Warn("RescheduleAppointment: target time %s does not match slot layout", req.NewStartTime)
	return ErrInvalidTimeSlot
}

func (uc *UseCase) resolveCandidates(ctx context.Context, req *Request) ([]*domain.Operator, error) {
	if req.NewOperatorID != nil {
		op, err := uc.operatorRepo.GetByID(ctx, *req.NewOperatorID)
		if err != nil {
			if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
				uc.logger.Warn("RescheduleAppointment: operator id=%d not found", *req.NewOperatorID)
				return nil, ErrOperatorNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get operator id=%d: %v", *req.NewOperatorID, err)
			return nil, fmt.Errorf("%w: failed to get operator: %v", ErrInternal, err)
		}

		if !op.CanPerform(req.NewServiceID) {
			uc.logger.Warn("RescheduleAppointment: operator id=%d does not perform service id=%d",
				*req.NewOperatorID, req.NewServiceID)
			return nil, ErrOperatorNotQualified
		}

		return []*domain.Operator{op}, nil
	}

	operators, err := uc.operatorRepo.List(ctx, ptr.Ptr(req.NewServiceID))
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to list operators for service id=%d: %v", req.NewServiceID, err)
		return nil, fmt.Errorf("%w: failed to list operators: %v", ErrInternal, err)
	}

	return operators, nil
}

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

	uc.logger.Warn("RescheduleAppointment: no free operator among %d candidates at %s", len(candidates), slot.StartTime)
	return nil, ErrSlotTaken
}

func excludeAppointment(appointments []*domain.Appointment, id int64) []*domain.Appointment {
	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.ID != id {
			filtered = append(filtered, appt)
		}
	}
	return filtered
}
