package login

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scholar/internal/auth"
	"github.com/abhisek/scholar/internal/backend"
	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/router"
)

type fakeGate struct {
	calls int
	got   auth.Credentials
	err   error
}

func (f *fakeGate) Login(_ context.Context, c auth.Credentials) (*backend.UserHandle, error) {
	f.calls++
	f.got = c
	if f.err != nil {
		return nil, f.err
	}
	return &backend.UserHandle{UID: "u1", Email: c.Email}, nil
}

func keyText(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeInto(s *LoginScreen, text string) {
	for _, r := range text {
		s.Update(keyText(r))
	}
}

func fill(s *LoginScreen, email, password string) {
	typeInto(s, email)
	s.Update(keyCode(tea.KeyTab))
	typeInto(s, password)
}

func newScreen(gate *fakeGate) *LoginScreen {
	s := New(gate)
	s.Init()
	return s
}

func navigateTarget(t *testing.T, cmd tea.Cmd) nav.ID {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.NavigateMsg)
	require.True(t, ok, "expected NavigateMsg")
	return msg.To
}

func TestLogin_ValidationMakesNoRemoteCall(t *testing.T) {
	tests := []struct {
		name, email, password, want string
	}{
		{"both empty", "", "", "all fields required"},
		{"email empty", "", "secret", "all fields required"},
		{"password empty", "ada@example.com", "", "all fields required"},
		{"short password", "a@b.com", "123", "password too short"},
		{"short multibyte password", "a@b.com", "éé", "password too short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := &fakeGate{}
			s := newScreen(gate)
			fill(s, tt.email, tt.password)

			_, cmd := s.Update(keyCode(tea.KeyEnter))

			assert.Nil(t, cmd)
			assert.Equal(t, 0, gate.calls)
			assert.Equal(t, tt.want, s.status)
			assert.True(t, s.problem)
		})
	}
}

func TestLogin_SuccessNavigatesHome(t *testing.T) {
	gate := &fakeGate{}
	s := newScreen(gate)
	fill(s, "ada@example.com", "secret")

	_, cmd := s.Update(keyCode(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, s.busy)

	msg := cmd()
	assert.Equal(t, 1, gate.calls)
	assert.Equal(t, auth.Credentials{Email: "ada@example.com", Password: "secret"}, gate.got)

	_, cmd = s.Update(msg)
	assert.Equal(t, nav.Home, navigateTarget(t, cmd))
	assert.Equal(t, "Login successful.", s.status)
	assert.Contains(t, s.View(80, 24), "Login successful.")
}

func TestLogin_SendsCredentialsAsTyped(t *testing.T) {
	gate := &fakeGate{}
	s := newScreen(gate)
	fill(s, " ada@example.com", "secret")

	_, cmd := s.Update(keyCode(tea.KeyEnter))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, " ada@example.com", gate.got.Email)
}

func TestLogin_FailureShownInline(t *testing.T) {
	gate := &fakeGate{err: &auth.AuthError{Op: "sign in", Err: backend.ErrInvalidCredentials}}
	s := newScreen(gate)
	fill(s, "ada@example.com", "wrong")

	_, cmd := s.Update(keyCode(tea.KeyEnter))
	_, next := s.Update(cmd())

	assert.Nil(t, next)
	assert.Equal(t, "invalid credentials", s.status)
	assert.False(t, s.busy)
	assert.Equal(t, 1, gate.calls, "no retry")
}

func TestLogin_BusyIgnoresSecondSubmit(t *testing.T) {
	gate := &fakeGate{}
	s := newScreen(gate)
	fill(s, "ada@example.com", "secret")

	_, first := s.Update(keyCode(tea.KeyEnter))
	_, second := s.Update(keyCode(tea.KeyEnter))

	require.NotNil(t, first)
	assert.Nil(t, second)
}

func TestLogin_LateResultDiscardedAfterLeave(t *testing.T) {
	gate := &fakeGate{}
	s := newScreen(gate)
	fill(s, "ada@example.com", "secret")

	_, cmd := s.Update(keyCode(tea.KeyEnter))
	s.Leave()

	_, next := s.Update(cmd())
	assert.Nil(t, next)
	assert.NotEqual(t, "Login successful.", s.status)
}

func TestLogin_SignupLink(t *testing.T) {
	s := newScreen(&fakeGate{})

	s.Update(keyCode(tea.KeyUp)) // wraps to the last action
	_, cmd := s.Update(keyCode(tea.KeyEnter))

	assert.Equal(t, nav.Signup, navigateTarget(t, cmd))
}

func TestLogin_EnterOnEmailMovesToPassword(t *testing.T) {
	gate := &fakeGate{}
	s := newScreen(gate)
	typeInto(s, "ada@example.com")

	s.Update(keyCode(tea.KeyEnter))
	typeInto(s, "secret")

	assert.Equal(t, "secret", s.form.Value(fieldPassword))
	assert.Equal(t, 0, gate.calls)
}

func TestLogin_Identity(t *testing.T) {
	s := New(&fakeGate{})
	assert.Equal(t, nav.Login, s.ID())
	assert.Equal(t, "Login", s.Title())
	assert.True(t, strings.Contains(s.View(80, 24), "Sign in"))
}

