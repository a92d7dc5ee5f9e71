package entity

import (
	"errors"
	"fmt"
)

// Domain errors surfaced to the boundary unmodified. The HTTP layer maps
// each one to a status code; nothing in the core logs or swallows them.
var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrEmptyHash     = errors.New("password hash cannot be empty")

	// ErrInvalidCredentials deliberately covers wrong password, unknown
	// email at login, and malformed/expired/forged/reused tokens so the
	// API does not leak account existence or token validity.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrTokenNotFound     = errors.New("refresh token not found")
)

// WeakPasswordError names the first password policy rule the candidate
// password failed to meet.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("weak password: %s", e.Reason)
}
