package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/scholar/internal/backend"
)

// Accounts implements backend.AuthService with bcrypt-hashed passwords.
// The signed-in user is held in memory for the life of the process.
type Accounts struct {
	drv  *entsql.Driver
	now  func() time.Time
	cost int

	mu      sync.Mutex
	current *backend.UserHandle
}

var _ backend.AuthService = (*Accounts)(nil)

func newAccounts(drv *entsql.Driver, now func() time.Time) *Accounts {
	return &Accounts{drv: drv, now: now, cost: bcrypt.DefaultCost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Accounts) SignIn(ctx context.Context, email, password string) (*backend.UserHandle, error) {
	email = normalizeEmail(email)

	b := builder()
	query, args := b.Select("id", "password_hash").
		From(b.Table("accounts")).
		Where(entsql.EQ("email", email)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := a.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query account: %w", err)
		}
		return nil, backend.ErrInvalidCredentials
	}
	var id, hash string
	if err := rows.Scan(&id, &hash); err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, backend.ErrInvalidCredentials
	}

	user := &backend.UserHandle{UID: id, Email: email}
	a.setCurrent(user)
	return user, nil
}

func (a *Accounts) SignUp(ctx context.Context, email, password string) (*backend.UserHandle, error) {
	email = normalizeEmail(email)

	exists, err := a.exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, backend.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.New().String()
	query, args := builder().Insert("accounts").
		Columns("id", "email", "password_hash", "created_at").
		Values(id, email, string(hash), a.now().UnixMilli()).
		Query()
	if _, err := exec(ctx, a.drv, query, args); err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	user := &backend.UserHandle{UID: id, Email: email}
	a.setCurrent(user)
	return user, nil
}

func (a *Accounts) exists(ctx context.Context, email string) (bool, error) {
	b := builder()
	query, args := b.Select("id").
		From(b.Table("accounts")).
		Where(entsql.EQ("email", email)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := a.drv.Query(ctx, query, args, rows); err != nil {
		return false, fmt.Errorf("query account: %w", err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("query account: %w", err)
	}
	return found, nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (a *Accounts) CurrentUser() *backend.UserHandle {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	u := *a.current
	return &u
}

func (a *Accounts) setCurrent(u *backend.UserHandle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = u
}
