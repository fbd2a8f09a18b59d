// Package auth centralizes role checks for privileged operations.
// Every privileged operation is authorized at the point of use through
// a single Authorizer instead of ad hoc per-handler checks.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamtime/SalonBookingService/internal/domain"
	userRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/user"
)

// UserRepository resolves users for role checks.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger is the logging interface used by the authorizer.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Authorizer performs role checks against the user store.
type Authorizer struct {
	users  UserRepository
	logger Logger
}

// NewAuthorizer creates an authorizer.
func NewAuthorizer(users UserRepository, logger Logger) *Authorizer {
	return &Authorizer{users: users, logger: logger}
}

// EnsureRole verifies that the actor has the required role.
func (a *Authorizer) EnsureRole(ctx context.Context, actorID int64, role domain.UserRole) error {
	u, err := a.lookup(ctx, actorID)
	if err != nil {
		return err
	}

	if u.Role != role {
		a.logger.Warn("auth: user=%d role=%s lacks required role=%s", actorID, u.Role, role)
		return ErrAccessDenied
	}

	return nil
}

// EnsureAdmin verifies that the actor is an administrator.
func (a *Authorizer) EnsureAdmin(ctx context.Context, actorID int64) error {
	return a.EnsureRole(ctx, actorID, domain.RoleAdmin)
}

// EnsureAdminOrOwner verifies that the actor either owns the resource
// or is an administrator. Owners are allowed without a store round-trip.
func (a *Authorizer) EnsureAdminOrOwner(ctx context.Context, actorID, ownerID int64) error {
	if actorID == ownerID {
		return nil
	}

	u, err := a.lookup(ctx, actorID)
	if err != nil {
		return err
	}

	if !u.IsAdmin() {
		a.logger.Warn("auth: user=%d is neither owner=%d nor admin", actorID, ownerID)
		return ErrAccessDenied
	}

	return nil
}

func (a *Authorizer) lookup(ctx context.Context, actorID int64) (*domain.User, error) {
	u, err := a.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			a.logger.Warn("auth: user=%d not found", actorID)
			return nil, ErrUserNotFound
		}
		a.logger.Error("auth: failed to load user=%d: %v", actorID, err)
		return nil, fmt.Errorf("%w: failed to load user: %v", ErrInternal, err)
	}
	return u, nil
}
