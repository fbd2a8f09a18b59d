package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/internal/auth"
	"github.com/glamtime/SalonBookingService/internal/domain"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	"github.com/glamtime/SalonBookingService/internal/service/appointments/models"
)

// Stubs

type stubAppointmentRepo struct {
	byID          map[int64]*domain.Appointment
	listResult    []*domain.Appointment
	lastFilter    domain.AppointmentsFilter
	cancelCalls   int
	statusUpdates map[int64]domain.AppointmentStatus
}

func newStubRepo(appts ...*domain.Appointment) *stubAppointmentRepo {
	byID := make(map[int64]*domain.Appointment, len(appts))
	for _, a := range appts {
		byID[a.ID] = a
	}
	return &stubAppointmentRepo{
		byID:          byID,
		statusUpdates: make(map[int64]domain.AppointmentStatus),
	}
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (s *stubAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := s.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	s.statusUpdates[id] = status
	return nil
}

func (s *stubAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := s.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	s.cancelCalls++
	a.Status = domain.StatusCancelled
	a.CancellationReason = &reason
	return nil
}

// stubAuthorizer grants admin to the configured IDs and treats everyone
// else as a plain client.
type stubAuthorizer struct {
	admins map[int64]bool
}

func (s *stubAuthorizer) EnsureAdmin(_ context.Context, actorID int64) error {
	if s.admins[actorID] {
		return nil
	}
	return auth.ErrAccessDenied
}

func (s *stubAuthorizer) EnsureAdminOrOwner(_ context.Context, actorID, ownerID int64) error {
	if actorID == ownerID || s.admins[actorID] {
		return nil
	}
	return auth.ErrAccessDenied
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

const (
	adminID  = int64(1)
	clientID = int64(2)
	otherID  = int64(3)
)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID: 500, ClientID: clientID, ServiceID: 1, OperatorID: 10,
		AppointmentDate: testDate, StartTime: "09:00", DurationMinutes: 60,
		Status: domain.StatusScheduled, ServiceName: "Manicure", ServicePrice: 50,
	}
}

func newTestService(repo *stubAppointmentRepo) *Service {
	return NewService(repo, &stubAuthorizer{admins: map[int64]bool{adminID: true}}, nopLogger{})
}

// Tests

func TestGetByID_Owner(t *testing.T) {
	svc := newTestService(newStubRepo(scheduledAppointment()))

	resp, err := svc.GetByID(context.Background(), 500, clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "2025-03-10", resp.AppointmentDate)
}

func TestGetByID_AdminSeesAny(t *testing.T) {
	svc := newTestService(newStubRepo(scheduledAppointment()))

	_, err := svc.GetByID(context.Background(), 500, adminID)
	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc := newTestService(newStubRepo(scheduledAppointment()))

	_, err := svc.GetByID(context.Background(), 500, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.GetByID(context.Background(), 999, clientID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_Scheduled(t *testing.T) {
	repo := newStubRepo(scheduledAppointment())
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 500, &models.CancelAppointmentRequest{
		ActorID:            clientID,
		CancellationReason: "client asked",
	})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, domain.StatusCancelled, repo.byID[500].Status)
}

func TestCancel_AlreadyCancelledIsNoOp(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusCancelled
	repo := newStubRepo(appt)
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 500, &models.CancelAppointmentRequest{ActorID: clientID})
	require.NoError(t, err)

	assert.False(t, resp.Changed)
	assert.Zero(t, repo.cancelCalls, "repeated cancel must not hit the store")
}

func TestCancel_CompletedRejected(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusCompleted
	svc := newTestService(newStubRepo(appt))

	_, err := svc.Cancel(context.Background(), 500, &models.CancelAppointmentRequest{ActorID: clientID})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := newStubRepo(scheduledAppointment())
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 500, &models.CancelAppointmentRequest{ActorID: otherID})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelCalls)
}

func TestComplete_Admin(t *testing.T) {
	repo := newStubRepo(scheduledAppointment())
	svc := newTestService(repo)

	resp, err := svc.Complete(context.Background(), 500, adminID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.statusUpdates[500])
}

func TestComplete_OwnerDenied(t *testing.T) {
	repo := newStubRepo(scheduledAppointment())
	svc := newTestService(repo)

	_, err := svc.Complete(context.Background(), 500, clientID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.statusUpdates)
}

func TestComplete_CancelledRejected(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusCancelled
	svc := newTestService(newStubRepo(appt))

	_, err := svc.Complete(context.Background(), 500, adminID)
	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestGetClientAppointments_OwnHistory(t *testing.T) {
	repo := newStubRepo()
	repo.listResult = []*domain.Appointment{scheduledAppointment()}
	svc := newTestService(repo)

	resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ActorID:  clientID,
		ClientID: clientID,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, repo.lastFilter.ClientID)
	assert.Equal(t, clientID, *repo.lastFilter.ClientID)
}

func TestGetClientAppointments_StatusFilter(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	status := "cancelled"
	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ActorID:  clientID,
		ClientID: clientID,
		Status:   &status,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusCancelled, *repo.lastFilter.Status)
}

func TestGetClientAppointments_InvalidStatus(t *testing.T) {
	svc := newTestService(newStubRepo())

	status := "postponed"
	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ActorID:  clientID,
		ClientID: clientID,
		Status:   &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClientAppointments_StrangerDenied(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ActorID:  otherID,
		ClientID: clientID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetSchedule_AdminOnly(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	_, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{
		ActorID: clientID,
		Date:    testDate,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{
		ActorID: adminID,
		Date:    testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
	require.NotNil(t, repo.lastFilter.Date)
}
