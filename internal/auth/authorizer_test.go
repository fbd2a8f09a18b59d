package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glamtime/SalonBookingService/internal/domain"
	userRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/user"
)

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestAuthorizer() *Authorizer {
	return NewAuthorizer(&stubUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "Admin", Role: domain.RoleAdmin},
		2: {ID: 2, Name: "Client", Role: domain.RoleClient},
	}}, nopLogger{})
}

func TestEnsureAdmin(t *testing.T) {
	a := newTestAuthorizer()
	ctx := context.Background()

	assert.NoError(t, a.EnsureAdmin(ctx, 1))
	assert.ErrorIs(t, a.EnsureAdmin(ctx, 2), ErrAccessDenied)
	assert.ErrorIs(t, a.EnsureAdmin(ctx, 99), ErrUserNotFound)
}

func TestEnsureAdminOrOwner(t *testing.T) {
	a := newTestAuthorizer()
	ctx := context.Background()

	// Owners pass without a store lookup, so even an unknown ID may act
	// on its own resources.
	assert.NoError(t, a.EnsureAdminOrOwner(ctx, 99, 99))

	assert.NoError(t, a.EnsureAdminOrOwner(ctx, 1, 2))
	assert.ErrorIs(t, a.EnsureAdminOrOwner(ctx, 2, 1), ErrAccessDenied)
	assert.ErrorIs(t, a.EnsureAdminOrOwner(ctx, 98, 99), ErrUserNotFound)
}
