package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/auth"
	"github.com/abhisek/scholar/internal/backend"
	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/router"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/ui/components"
	"github.com/abhisek/scholar/internal/ui/layout"
	"github.com/abhisek/scholar/internal/ui/theme"
)

// Authenticator signs a user in.
type Authenticator interface {
	Login(ctx context.Context, c auth.Credentials) (*backend.UserHandle, error)
}

const (
	fieldEmail = iota
	fieldPassword
)

const (
	actionLogin = iota
	actionSignup
)

// resultMsg carries the outcome of one sign-in attempt.
type resultMsg struct {
	attempt int
	user    *backend.UserHandle
	err     error
}

// LoginScreen collects email and password and signs in.
type LoginScreen struct {
	gate    Authenticator
	form    components.Form
	attempt int
	busy    bool
	status  string
	problem bool
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)
var _ screen.Leaver = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(gate Authenticator) *LoginScreen {
	return &LoginScreen{
		gate: gate,
		form: components.NewForm([]components.TextInput{
			components.NewTextInput("Email", "you@example.com", false, 256),
			components.NewTextInput("Password", "at least 4 characters", true, 128),
		}, "Login", "Create an account"),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) ID() nav.ID {
	return nav.Login
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Leave discards any sign-in still in flight.
func (s *LoginScreen) Leave() {
	s.attempt++
	s.busy = false
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		return s.handleResult(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.handleEnter()
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *LoginScreen) handleEnter() (screen.Screen, tea.Cmd) {
	if a, ok := s.form.FocusedAction(); ok {
		if a == actionSignup {
			return s, router.Navigate(nav.Signup)
		}
		return s, s.submit()
	}
	if s.form.OnLastInput() {
		return s, s.submit()
	}
	return s, s.form.Next()
}

// submit validates locally and, only if that passes, starts the remote
// sign-in. Attempts are not retried.
func (s *LoginScreen) submit() tea.Cmd {
	if s.busy {
		return nil
	}
	creds := auth.Credentials{
		Email:    s.form.Value(fieldEmail),
		Password: s.form.Value(fieldPassword),
	}
	if err := auth.ValidateLogin(creds); err != nil {
		s.setStatus(err.Error(), true)
		return nil
	}

	s.attempt++
	s.busy = true
	s.setStatus("Signing in...", false)

	attempt, gate := s.attempt, s.gate
	return func() tea.Msg {
		user, err := gate.Login(context.Background(), creds)
		return resultMsg{attempt: attempt, user: user, err: err}
	}
}

func (s *LoginScreen) handleResult(msg resultMsg) (screen.Screen, tea.Cmd) {
	if msg.attempt != s.attempt {
		return s, nil
	}
	s.busy = false
	if msg.err != nil {
		s.setStatus(msg.err.Error(), true)
		return s, nil
	}
	s.setStatus("Login successful.", false)
	return s, router.Navigate(nav.Home)
}

func (s *LoginScreen) setStatus(text string, problem bool) {
	s.status = text
	s.problem = problem
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := strings.Join([]string{
		components.Heading("Sign in to Scholar"),
		"",
		s.form.View(),
		"",
		components.Status(s.status, s.problem),
	}, "\n")
	return components.Centered(theme.Card.Width(cw).Render(body), width, height)
}
