package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/SalonBookingService/internal/auth"
	"github.com/glamtime/SalonBookingService/internal/domain"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	"github.com/glamtime/SalonBookingService/internal/service/appointments/models"
)

// Service handles appointment reads and lifecycle transitions that do
// not need slot arithmetic: fetching, listing, cancel and complete.
type Service struct {
	appointmentRepo AppointmentRepository
	authorizer      Authorizer
	logger          Logger
}

// NewService creates a new appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	authorizer Authorizer,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		authorizer:      authorizer,
		logger:          logger,
	}
}

// GetByID fetches an appointment. Clients may see only their own
// appointments; admins may see any.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for actor=%d", id, actorID)

	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAdminOrOwner(ctx, "GetByID", actorID, appt.ClientID); err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments returns a client's appointment history, newest
// bookings last, optionally filtered by status. Clients may list only
// their own history; admins may list anyone's.
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, actor=%d, status=%v",
		req.ClientID, req.ActorID, req.Status)

	if err := s.ensureAdminOrOwner(ctx, "GetClientAppointments", req.ActorID, req.ClientID); err != nil {
		return nil, err
	}

	filter := domain.AppointmentsFilter{ClientID: &req.ClientID}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%d", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetSchedule returns the appointments of one day, optionally narrowed
// to a single operator. Admin only.
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for date=%s, operator=%v, actor=%d",
		req.Date.Format(domain.DateFormat), req.OperatorID, req.ActorID)

	if err := s.ensureAdmin(ctx, "GetSchedule", req.ActorID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetSchedule: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: fetched %d appointments for date=%s", len(appointments), req.Date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels an appointment. The operation is idempotent: cancelling
// an already cancelled appointment succeeds with Changed=false. A
// completed appointment cannot be cancelled. Clients may cancel only
// their own appointments; admins may cancel any.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by actor=%d", appointmentID, req.ActorID)

	appt, err := s.getAppointment(ctx, "Cancel", appointmentID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAdminOrOwner(ctx, "Cancel", req.ActorID, appt.ClientID); err != nil {
		return nil, err
	}

	if appt.IsCancelled() {
		s.logger.Info("Cancel: appointment id=%d already cancelled, no-op", appointmentID)
		return &models.CancelResponse{Changed: false}, nil
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return &models.CancelResponse{Changed: true}, nil
}

// Complete marks an appointment as completed. Admin only; allowed only
// from the scheduled state.
func (s *Service) Complete(ctx context.Context, appointmentID int64, actorID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d by actor=%d", appointmentID, actorID)

	if err := s.ensureAdmin(ctx, "Complete", actorID); err != nil {
		return nil, err
	}

	appt, err := s.getAppointment(ctx, "Complete", appointmentID)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", appointmentID, appt.Status)
		return nil, ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found during update", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCompleted

	s.logger.Info("Complete: successfully completed appointment id=%d", appointmentID)
	return models.FromDomainAppointment(appt), nil
}

// Helpers

func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

func (s *Service) ensureAdminOrOwner(ctx context.Context, op string, actorID, ownerID int64) error {
	if err := s.authorizer.EnsureAdminOrOwner(ctx, actorID, ownerID); err != nil {
		if errors.Is(err, auth.ErrAccessDenied) || errors.Is(err, auth.ErrUserNotFound) {
			s.logger.Warn("%s: access denied for actor=%d (owner=%d)", op, actorID, ownerID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: authorization failed for actor=%d: %v", op, actorID, err)
		return fmt.Errorf("%w: %s - authorization failed: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) ensureAdmin(ctx context.Context, op string, actorID int64) error {
	if err := s.authorizer.EnsureAdmin(ctx, actorID); err != nil {
		if errors.Is(err, auth.ErrAccessDenied) || errors.Is(err, auth.ErrUserNotFound) {
			s.logger.Warn("%s: admin access denied for actor=%d", op, actorID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: authorization failed for actor=%d: %v", op, actorID, err)
		return fmt.Errorf("%w: %s - authorization failed: %v", ErrInternal, op, err)
	}
	return nil
}
