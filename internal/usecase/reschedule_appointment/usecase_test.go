package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/internal/domain"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	"github.com/glamtime/SalonBookingService/pkg/ptr"
)

// Stubs

type stubAppointmentRepo struct {
	byID      map[int64]*domain.Appointment
	createErr error
	created   []*domain.Appointment
	cancelled map[int64]string
	nextID    int64
}

func newStubAppointmentRepo(appts ...*domain.Appointment) *stubAppointmentRepo {
	byID := make(map[int64]*domain.Appointment, len(appts))
	for _, a := range appts {
		byID[a.ID] = a
	}
	return &stubAppointmentRepo{
		byID:      byID,
		cancelled: make(map[int64]string),
		nextID:    1000,
	}
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	stored := *appt
	stored.ID = s.nextID
	s.created = append(s.created, &stored)
	return &stored, nil
}

func (s *stubAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(s.byID))
	for _, a := range s.byID {
		if filter.Date != nil && !a.AppointmentDate.Equal(*filter.Date) {
			continue
		}
		if filter.OccupyingOnly && !a.OccupiesSlot() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (s *stubAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := s.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusCancelled
	s.cancelled[id] = reason
	return nil
}

type stubServiceRepo struct {
	services map[int64]*domain.Service
}

func (s *stubServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, assert.AnError
}

type stubOperatorRepo struct {
	operators []*domain.Operator
}

func (s *stubOperatorRepo) GetByID(_ context.Context, id int64) (*domain.Operator, error) {
	for _, op := range s.operators {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, assert.AnError
}

func (s *stubOperatorRepo) List(_ context.Context, serviceID *int64) ([]*domain.Operator, error) {
	result := make([]*domain.Operator, 0, len(s.operators))
	for _, op := range s.operators {
		if serviceID == nil || op.CanPerform(*serviceID) {
			result = append(result, op)
		}
	}
	return result, nil
}

type stubAuthorizer struct {
	err error
}

func (s *stubAuthorizer) EnsureAdminOrOwner(_ context.Context, _, _ int64) error {
	return s.err
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

var (
	testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dayAhead = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
)

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID: 500, ClientID: 2, ServiceID: 1, OperatorID: 10,
		AppointmentDate: testDate, StartTime: "09:00", DurationMinutes: 60,
		Status: domain.StatusScheduled, ServiceName: "Manicure", ServicePrice: 50,
	}
}

func newTestUseCase(t *testing.T, repo *stubAppointmentRepo) *UseCase {
	t.Helper()

	hours := domain.DefaultBusinessHours()
	require.NoError(t, hours.Validate())

	uc := NewUseCase(
		repo,
		&stubServiceRepo{services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Price: 50},
		}},
		&stubOperatorRepo{operators: []*domain.Operator{
			{ID: 10, Name: "Alice", ServiceIDs: []int64{1}},
		}},
		&stubAuthorizer{},
		inlineTxManager{},
		hours,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: dayAhead}
	return uc
}

func validRequest() *Request {
	return &Request{
		ActorID:       2,
		AppointmentID: 500,
		NewServiceID:  1,
		NewDate:       testDate,
		NewStartTime:  "10:00",
	}
}

// Tests

func TestExecute_Success(t *testing.T) {
	repo := newStubAppointmentRepo(scheduledAppointment())
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(500), resp.PreviousAppointmentID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "scheduled", resp.Status)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "rescheduled", repo.cancelled[500])
}

func TestExecute_OldSlotIgnoredInConflictCheck(t *testing.T) {
	// Same operator, same day: the retiring record must not block its
	// own adjacent slot -- or any slot it occupied itself.
	repo := newStubAppointmentRepo(scheduledAppointment())
	uc := newTestUseCase(t, repo)

	req := validRequest()
	req.NewOperatorID = ptr.Ptr(int64(10))
	req.NewStartTime = "09:00" // the very slot the old record holds

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.StartTime.String())
}

func TestExecute_TargetTakenLeavesOldUntouched(t *testing.T) {
	other := &domain.Appointment{
		ID: 600, ClientID: 3, ServiceID: 1, OperatorID: 10,
		AppointmentDate: testDate, StartTime: "10:00", DurationMinutes: 60,
		Status: domain.StatusScheduled,
	}
	repo := newStubAppointmentRepo(scheduledAppointment(), other)
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	assert.Empty(t, repo.created)
	assert.Empty(t, repo.cancelled)
	assert.Equal(t, domain.StatusScheduled, repo.byID[500].Status)
}

func TestExecute_CancelledNotReschedulable(t *testing.T) {
	old := scheduledAppointment()
	old.Status = domain.StatusCancelled
	repo := newStubAppointmentRepo(old)
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_CompletedNotReschedulable(t *testing.T) {
	old := scheduledAppointment()
	old.Status = domain.StatusCompleted
	repo := newStubAppointmentRepo(old)
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_AlreadyStarted(t *testing.T) {
	repo := newStubAppointmentRepo(scheduledAppointment())
	uc := newTestUseCase(t, repo)
	// The old appointment started at 09:00 today; now is 09:30.
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}

	req := validRequest()
	req.NewStartTime = "11:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestExecute_AlreadyStartedOnNonUTCClock(t *testing.T) {
	// The stored date is UTC midnight while the clock runs three hours
	// ahead; the wall-clock comparison must still see 09:00 as started.
	repo := newStubAppointmentRepo(scheduledAppointment())
	uc := newTestUseCase(t, repo)
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 3, 10, 9, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
	}

	req := validRequest()
	req.NewStartTime = "11:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestExecute_NotFound(t *testing.T) {
	repo := newStubAppointmentRepo()
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_PastTargetRejected(t *testing.T) {
	repo := newStubAppointmentRepo(scheduledAppointment())
	uc := newTestUseCase(t, repo)
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestExecute_MisalignedTargetRejected(t *testing.T) {
	repo := newStubAppointmentRepo(scheduledAppointment())
	uc := newTestUseCase(t, repo)

	req := validRequest()
	req.NewStartTime = "10:45"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}
