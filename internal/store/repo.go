package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Kind  string // exact kind match ("" = any)
}

// Event kinds recorded by the audit decorators.
const (
	KindSignIn       = "auth.sign_in"
	KindSignUp       = "auth.sign_up"
	KindAddDocument  = "docs.add"
	KindGetDocuments = "docs.get"
	KindSetDocument  = "docs.set"
)

// EventData captures a single backend call.
type EventData struct {
	Kind         string
	Subject      string // email or collection[/id]
	Success      bool
	LatencyMs    int64
	ErrorMessage string
}

// Event is a persisted EventData.
type Event struct {
	ID        int
	Timestamp time.Time
	EventData
}

// EventRepo provides append and query access to the audit log.
type EventRepo interface {
	// AppendEvent records a backend call.
	AppendEvent(ctx context.Context, data EventData) error

	// QueryEvents returns the most recent events first.
	QueryEvents(ctx context.Context, opts QueryOpts) ([]Event, error)
}
