// Package backend defines the two remote capabilities the app consumes:
// an authentication service and a schemaless document store. Concrete
// implementations live in internal/store; tests substitute fakes.
package backend

import (
	"context"
	"errors"
	"time"
)

// Collection names used by the app.
const (
	CollectionQuizzes = "MathQuiz"
	CollectionUsers   = "users"
)

// Sentinel errors reported by implementations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email address already in use")
	ErrNotFound           = errors.New("not found")
)

// UserHandle is the opaque identity returned by a successful sign-in or sign-up.
type UserHandle struct {
	UID   string
	Email string
}

// AuthService performs credential verification.
type AuthService interface {
	// SignIn verifies email and password and makes the user current.
	SignIn(ctx context.Context, email, password string) (*UserHandle, error)

	// SignUp creates an account and makes the new user current.
	SignUp(ctx context.Context, email, password string) (*UserHandle, error)

	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *UserHandle
}

// Record is one document as returned by GetDocuments.
type Record struct {
	ID     string
	Fields map[string]any
}

// String returns the named field as a string, or "" if it is missing or
// not a string.
func (r Record) String(name string) string {
	s, _ := r.Fields[name].(string)
	return s
}

// DocumentStore persists schemaless records grouped into named collections.
type DocumentStore interface {
	// AddDocument stores fields under a new generated id.
	AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error)

	// GetDocuments returns every record of the collection in insertion order.
	GetDocuments(ctx context.Context, collection string) ([]Record, error)

	// SetDocument creates or overwrites the record with the given id.
	SetDocument(ctx context.Context, collection, id string, fields map[string]any) error
}

// Sentinel is a placeholder field value resolved by the store at write time.
type Sentinel int

// ServerTimestamp is replaced by the store's clock when the document is written.
const ServerTimestamp Sentinel = 1

// ResolveFields returns a copy of fields with sentinels replaced.
// Timestamps are written as RFC 3339 strings in UTC.
func ResolveFields(fields map[string]any, now time.Time) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == ServerTimestamp {
			out[k] = now.UTC().Format(time.RFC3339Nano)
			continue
		}
		out[k] = v
	}
	return out
}
