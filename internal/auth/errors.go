package auth

import "errors"

var (
	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrAccessDenied is returned when the actor lacks the required role
	ErrAccessDenied = errors.New("auth: access denied")

	// ErrInternal is returned on store failures during authorization
	ErrInternal = errors.New("auth: internal error")
)
