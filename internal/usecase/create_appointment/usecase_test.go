package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/internal/auth"
	"github.com/glamtime/SalonBookingService/internal/domain"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	userRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/user"
	"github.com/glamtime/SalonBookingService/pkg/ptr"
)

// Stubs

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	created      []*domain.Appointment
	nextID       int64
}

func (s *stubAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	stored := *appt
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.created = append(s.created, &stored)
	return &stored, nil
}

type stubServiceRepo struct {
	services map[int64]*domain.Service
	err      error
}

func (s *stubServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
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

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type stubAuthorizer struct {
	err error
}

func (s *stubAuthorizer) EnsureAdminOrOwner(_ context.Context, _, _ int64) error {
	return s.err
}

// inlineTxManager runs the function directly; serialization guarantees
// are the real database's job.
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

type fixture struct {
	uc      *UseCase
	repo    *stubAppointmentRepo
	authErr *stubAuthorizer
}

func newFixture(t *testing.T, appts []*domain.Appointment) *fixture {
	t.Helper()

	hours := domain.DefaultBusinessHours()
	require.NoError(t, hours.Validate())

	repo := &stubAppointmentRepo{appointments: appts}
	authorizer := &stubAuthorizer{}

	uc := NewUseCase(
		repo,
		&stubServiceRepo{services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Manicure", DurationMinutes: 60, Price: 50},
		}},
		&stubOperatorRepo{operators: []*domain.Operator{
			{ID: 10, Name: "Alice", ServiceIDs: []int64{1}},
			{ID: 11, Name: "Bob", ServiceIDs: []int64{1}},
		}},
		&stubUserRepo{users: map[int64]*domain.User{
			2: {ID: 2, Name: "Client", Role: domain.RoleClient},
		}},
		authorizer,
		inlineTxManager{},
		hours,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: dayAhead}

	return &fixture{uc: uc, repo: repo, authErr: authorizer}
}

func validRequest() *Request {
	return &Request{
		ActorID:   2,
		ClientID:  2,
		ServiceID: 1,
		Date:      testDate,
		StartTime: "09:00",
	}
}

// Tests

func TestExecute_Success(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.ClientID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, 50.0, resp.ServicePrice)
	require.Len(t, f.repo.created, 1)
}

func TestExecute_PinnedOperator(t *testing.T) {
	f := newFixture(t, nil)

	req := validRequest()
	req.OperatorID = ptr.Ptr(int64(11))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.OperatorID)
}

func TestExecute_AutoAssignSkipsBusyOperator(t *testing.T) {
	appts := []*domain.Appointment{{
		ID: 100, ClientID: 3, ServiceID: 1, OperatorID: 10,
		AppointmentDate: testDate, StartTime: "09:00", DurationMinutes: 60,
		Status: domain.StatusScheduled,
	}}
	f := newFixture(t, appts)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.OperatorID, "must assign the free operator")
}

func TestExecute_SlotTakenWhenAllBusy(t *testing.T) {
	appts := []*domain.Appointment{
		{ID: 100, OperatorID: 10, AppointmentDate: testDate, StartTime: "09:00",
			DurationMinutes: 60, Status: domain.StatusScheduled},
		{ID: 101, OperatorID: 11, AppointmentDate: testDate, StartTime: "09:00",
			DurationMinutes: 60, Status: domain.StatusScheduled},
	}
	f := newFixture(t, appts)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.repo.created, "nothing may be written on conflict")
}

func TestExecute_PinnedOperatorBusy(t *testing.T) {
	appts := []*domain.Appointment{{
		ID: 100, OperatorID: 10, AppointmentDate: testDate, StartTime: "09:00",
		DurationMinutes: 60, Status: domain.StatusScheduled,
	}}
	f := newFixture(t, appts)

	req := validRequest()
	req.OperatorID = ptr.Ptr(int64(10))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_UniqueViolationMapsToSlotTaken(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_PastTimeRejected(t *testing.T) {
	f := newFixture(t, nil)
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestExecute_ExactStartIsPast(t *testing.T) {
	f := newFixture(t, nil)
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastTime, "start equal to now must be rejected")
}

func TestExecute_PastTimeRejectedOnNonUTCClock(t *testing.T) {
	// The request date parses in UTC but the clock runs in a local zone;
	// a slot that started half an hour ago on the wall clock must be
	// rejected regardless of the UTC offset.
	f := newFixture(t, nil)
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 3, 10, 9, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestExecute_MisalignedSlotRejected(t *testing.T) {
	f := newFixture(t, nil)

	req := validRequest()
	req.StartTime = "09:17"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_BreakTimeRejected(t *testing.T) {
	f := newFixture(t, nil)

	req := validRequest()
	req.StartTime = "12:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_AccessDenied(t *testing.T) {
	f := newFixture(t, nil)
	f.authErr.err = auth.ErrAccessDenied

	req := validRequest()
	req.ActorID = 3

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_UnknownClientRejected(t *testing.T) {
	f := newFixture(t, nil)

	req := validRequest()
	req.ActorID = 1 // admin booking on behalf
	req.ClientID = 99

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t, nil)

	req := validRequest()
	req.StartTime = "9 o'clock"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
