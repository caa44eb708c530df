// Package audit wraps the backend capabilities so that every remote call is
// recorded in the store's audit log.
package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/scholar/internal/backend"
	"github.com/abhisek/scholar/internal/store"
)

// AuthService is a decorator that records every sign-in and sign-up attempt.
type AuthService struct {
	inner backend.AuthService
	repo  store.EventRepo
}

var _ backend.AuthService = (*AuthService)(nil)

// WrapAuth wraps an AuthService with event logging.
func WrapAuth(inner backend.AuthService, repo store.EventRepo) backend.AuthService {
	return &AuthService{inner: inner, repo: repo}
}

func (a *AuthService) SignIn(ctx context.Context, email, password string) (*backend.UserHandle, error) {
	start := time.Now()
	user, err := a.inner.SignIn(ctx, email, password)
	record(ctx, a.repo, store.KindSignIn, email, start, err)
	return user, err
}

func (a *AuthService) SignUp(ctx context.Context, email, password string) (*backend.UserHandle, error) {
	start := time.Now()
	user, err := a.inner.SignUp(ctx, email, password)
	record(ctx, a.repo, store.KindSignUp, email, start, err)
	return user, err
}

func (a *AuthService) CurrentUser() *backend.UserHandle {
	return a.inner.CurrentUser()
}

// DocumentStore is a decorator that records every document call.
type DocumentStore struct {
	inner backend.DocumentStore
	repo  store.EventRepo
}

var _ backend.DocumentStore = (*DocumentStore)(nil)

// WrapDocuments wraps a DocumentStore with event logging.
func WrapDocuments(inner backend.DocumentStore, repo store.EventRepo) backend.DocumentStore {
	return &DocumentStore{inner: inner, repo: repo}
}

func (d *DocumentStore) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	start := time.Now()
	id, err := d.inner.AddDocument(ctx, collection, fields)
	subject := collection
	if id != "" {
		subject = collection + "/" + id
	}
	record(ctx, d.repo, store.KindAddDocument, subject, start, err)
	return id, err
}

func (d *DocumentStore) GetDocuments(ctx context.Context, collection string) ([]backend.Record, error) {
	start := time.Now()
	records, err := d.inner.GetDocuments(ctx, collection)
	record(ctx, d.repo, store.KindGetDocuments, collection, start, err)
	return records, err
}

func (d *DocumentStore) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	start := time.Now()
	err := d.inner.SetDocument(ctx, collection, id, fields)
	record(ctx, d.repo, store.KindSetDocument, collection+"/"+id, start, err)
	return err
}

// record appends the event but never fails the wrapped call.
func record(ctx context.Context, repo store.EventRepo, kind, subject string, start time.Time, err error) {
	data := store.EventData{
		Kind:      kind,
		Subject:   subject,
		Success:   err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if logErr := repo.AppendEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record %s event: %v\n", kind, logErr)
	}
}
