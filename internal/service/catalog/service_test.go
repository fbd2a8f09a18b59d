package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamtime/SalonBookingService/internal/domain"
	operatorRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/operator"
	serviceRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/service"
)

type stubServiceRepo struct {
	services map[int64]*domain.Service
	listErr  error
}

func (s *stubServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (s *stubServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	return out, nil
}

type stubOperatorRepo struct {
	operators map[int64]*domain.Operator
}

func (s *stubOperatorRepo) GetByID(_ context.Context, id int64) (*domain.Operator, error) {
	op, ok := s.operators[id]
	if !ok {
		return nil, operatorRepo.ErrOperatorNotFound
	}
	return op, nil
}

func (s *stubOperatorRepo) List(_ context.Context, serviceID *int64) ([]*domain.Operator, error) {
	out := make([]*domain.Operator, 0, len(s.operators))
	for _, op := range s.operators {
		if serviceID != nil && !op.CanPerform(*serviceID) {
			continue
		}
		out = append(out, op)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *stubServiceRepo, *stubOperatorRepo) {
	services := &stubServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Classic Manicure", DurationMinutes: 60, Price: 35},
		2: {ID: 2, Name: "Gel Extensions", DurationMinutes: 90, Price: 70},
	}}
	operators := &stubOperatorRepo{operators: map[int64]*domain.Operator{
		10: {ID: 10, Name: "Alice", ServiceIDs: []int64{1, 2}},
		11: {ID: 11, Name: "Maria", ServiceIDs: []int64{1}},
	}}
	return NewService(services, operators, nopLogger{}), services, operators
}

func TestListServices(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Services, 2)
}

func TestListServices_RepositoryError(t *testing.T) {
	svc, services, _ := newTestService()
	services.listErr = errors.New("connection refused")

	_, err := svc.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetService(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.GetService(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Gel Extensions", resp.Name)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestGetService_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetService(context.Background(), 999)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListOperators(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.ListOperators(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, resp.Operators, 2)
}

func TestListOperators_FilteredByService(t *testing.T) {
	svc, _, _ := newTestService()

	serviceID := int64(2)
	resp, err := svc.ListOperators(context.Background(), &serviceID)
	require.NoError(t, err)
	require.Len(t, resp.Operators, 1)
	assert.Equal(t, int64(10), resp.Operators[0].ID)
}

func TestListOperators_InvalidServiceID(t *testing.T) {
	svc, _, _ := newTestService()

	serviceID := int64(0)
	_, err := svc.ListOperators(context.Background(), &serviceID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOperator(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.GetOperator(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.Name)
	assert.Equal(t, []int64{1}, resp.ServiceIDs)
}

func TestGetOperator_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetOperator(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOperatorNotFound)
}
