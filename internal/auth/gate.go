// Package auth implements the credential gate in front of the auth service:
// deterministic local validation, then a single remote attempt.
package auth

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/abhisek/scholar/internal/backend"
)

// MinPasswordLength is the shortest password accepted, in characters.
const MinPasswordLength = 4

const (
	opSignIn = "sign in"
	opSignUp = "sign up"
)

// emailPattern is the common mobile-platform email address pattern.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
)

// Credentials is the transient form input for one submission.
type Credentials struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateLogin checks sign-in input. Email format is not checked here.
func ValidateLogin(c Credentials) error {
	if c.Email == "" || c.Password == "" {
		return ErrFieldsRequired
	}
	if utf8.RuneCountInString(c.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateRegister checks sign-up input; the first failing rule wins.
func ValidateRegister(c Credentials) error {
	if c.Email == "" || c.Password == "" || c.ConfirmPassword == "" {
		return ErrFieldsRequired
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrMalformedEmail
	}
	if utf8.RuneCountInString(c.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if c.Password != c.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Gate validates credentials and submits them to the auth service.
type Gate struct {
	auth backend.AuthService
	docs backend.DocumentStore
}

// NewGate creates a Gate over the given capabilities.
func NewGate(auth backend.AuthService, docs backend.DocumentStore) *Gate {
	return &Gate{auth: auth, docs: docs}
}

// Login validates and signs in. No remote call is made when validation fails.
func (g *Gate) Login(ctx context.Context, c Credentials) (*backend.UserHandle, error) {
	if err := ValidateLogin(c); err != nil {
		return nil, err
	}
	user, err := g.auth.SignIn(ctx, c.Email, c.Password)
	if err != nil {
		return nil, &AuthError{Op: opSignIn, Err: err}
	}
	return user, nil
}

// Register validates, creates the account and writes its profile record
// to users/<uid>. A failed profile write is reported as *ProfileWriteError
// and the account is left in place.
func (g *Gate) Register(ctx context.Context, c Credentials) (*backend.UserHandle, error) {
	if err := ValidateRegister(c); err != nil {
		return nil, err
	}
	user, err := g.auth.SignUp(ctx, c.Email, c.Password)
	if err != nil {
		return nil, &AuthError{Op: opSignUp, Err: err}
	}

	profile := map[string]any{
		"username":  c.Email,
		"email":     c.Email,
		"createdAt": backend.ServerTimestamp,
	}
	if err := g.docs.SetDocument(ctx, backend.CollectionUsers, user.UID, profile); err != nil {
		return user, &ProfileWriteError{User: user, Err: err}
	}
	return user, nil
}

// CurrentUser returns the signed-in user, or nil.
func (g *Gate) CurrentUser() *backend.UserHandle {
	return g.auth.CurrentUser()
}
