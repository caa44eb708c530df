package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/scholar/internal/backend"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scholar.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAccounts(s *Store) *Accounts {
	a := s.Accounts()
	a.cost = bcrypt.MinCost
	return a
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDocuments_AddAndGetInInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	docs := s.Documents()
	ctx := context.Background()

	var ids []string
	for _, q := range []string{"first", "second", "third"} {
		id, err := docs.AddDocument(ctx, "MathQuiz", map[string]any{"question": q})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		ids = append(ids, id)
	}
	_, err := docs.AddDocument(ctx, "Other", map[string]any{"question": "elsewhere"})
	require.NoError(t, err)

	records, err := docs.GetDocuments(ctx, "MathQuiz")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, ids[i], r.ID)
	}
	assert.Equal(t, "first", records[0].String("question"))
	assert.Equal(t, "third", records[2].String("question"))
}

func TestDocuments_GetEmptyCollection(t *testing.T) {
	s := openTestStore(t)

	records, err := s.Documents().GetDocuments(context.Background(), "MathQuiz")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDocuments_SetOverwritesWithoutReordering(t *testing.T) {
	s := openTestStore(t)
	docs := s.Documents()
	ctx := context.Background()

	require.NoError(t, docs.SetDocument(ctx, "users", "u1", map[string]any{"email": "old@x.io"}))
	require.NoError(t, docs.SetDocument(ctx, "users", "u2", map[string]any{"email": "two@x.io"}))
	require.NoError(t, docs.SetDocument(ctx, "users", "u1", map[string]any{"email": "new@x.io"}))

	records, err := docs.GetDocuments(ctx, "users")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "u1", records[0].ID)
	assert.Equal(t, "new@x.io", records[0].String("email"))
}

func TestDocuments_ServerTimestampResolved(t *testing.T) {
	s := openTestStore(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	docs := s.Documents()
	ctx := context.Background()

	require.NoError(t, docs.SetDocument(ctx, "users", "u1", map[string]any{
		"email":     "a@b.com",
		"createdAt": backend.ServerTimestamp,
	}))

	rec, err := docs.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02T03:04:05Z", rec.String("createdAt"))
}

func TestDocuments_GetDocumentNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Documents().GetDocument(context.Background(), "users", "nobody")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestAccounts_SignUpThenSignIn(t *testing.T) {
	s := openTestStore(t)
	acc := testAccounts(s)
	ctx := context.Background()

	assert.Nil(t, acc.CurrentUser())

	created, err := acc.SignUp(ctx, "Ada@Example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, created, acc.CurrentUser())

	signedIn, err := acc.SignIn(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.UID, signedIn.UID)
}

func TestAccounts_SignUpDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	acc := testAccounts(s)
	ctx := context.Background()

	_, err := acc.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = acc.SignUp(ctx, "ada@example.com", "other")
	assert.ErrorIs(t, err, backend.ErrEmailInUse)
}

func TestAccounts_SignInRejections(t *testing.T) {
	s := openTestStore(t)
	acc := testAccounts(s)
	ctx := context.Background()

	_, err := acc.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ada@example.com", "nope"},
		{"unknown user", "bob@example.com", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := acc.SignIn(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, backend.ErrInvalidCredentials)
		})
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendEvent(ctx, EventData{Kind: KindSignIn, Subject: "a@b.com", Success: false, ErrorMessage: "invalid credentials"}))
	require.NoError(t, repo.AppendEvent(ctx, EventData{Kind: KindGetDocuments, Subject: "MathQuiz", Success: true, LatencyMs: 3}))
	require.NoError(t, repo.AppendEvent(ctx, EventData{Kind: KindSignIn, Subject: "a@b.com", Success: true}))

	all, err := repo.QueryEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, KindSignIn, all[0].Kind)
	assert.True(t, all[0].Success)

	signIns, err := repo.QueryEvents(ctx, QueryOpts{Kind: KindSignIn, Limit: 1})
	require.NoError(t, err)
	require.Len(t, signIns, 1)
	assert.True(t, signIns[0].Success)

	docs, err := repo.QueryEvents(ctx, QueryOpts{Kind: KindGetDocuments})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int64(3), docs[0].LatencyMs)
}
