package auth

import (
	"fmt"

	"github.com/abhisek/scholar/internal/backend"
)

// ValidationError is a local, pre-network rejection of form input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation failures, in the order they are checked.
var (
	ErrFieldsRequired   = &ValidationError{Reason: "all fields required"}
	ErrMalformedEmail   = &ValidationError{Reason: "malformed email"}
	ErrPasswordTooShort = &ValidationError{Reason: "password too short"}
	ErrPasswordMismatch = &ValidationError{Reason: "passwords do not match"}
)

// AuthError is a rejection reported by the auth service.
// Sign-in failures never say which credential was wrong.
type AuthError struct {
	Op  string // "sign in" or "sign up"
	Err error
}

func (e *AuthError) Error() string {
	if e.Op == opSignIn {
		return "invalid credentials"
	}
	return fmt.Sprintf("account creation failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ProfileWriteError means the account was created but its profile record
// could not be stored. The user stays authenticated.
type ProfileWriteError struct {
	User *backend.UserHandle
	Err  error
}

func (e *ProfileWriteError) Error() string {
	return fmt.Sprintf("account created but profile could not be saved: %v", e.Err)
}

func (e *ProfileWriteError) Unwrap() error { return e.Err }
