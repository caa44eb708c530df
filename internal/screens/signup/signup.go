package signup

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

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, c auth.Credentials) (*backend.UserHandle, error)
}

const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
)

const (
	actionRegister = iota
	actionLogin
)

type resultMsg struct {
	attempt int
	email   string
	user    *backend.UserHandle
	err     error
}

// SignupScreen registers a new account.
type SignupScreen struct {
	gate    Registrar
	form    components.Form
	attempt int
	busy    bool
	status  string
	problem bool
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)
var _ screen.Leaver = (*SignupScreen)(nil)

// New creates a SignupScreen.
func New(gate Registrar) *SignupScreen {
	return &SignupScreen{
		gate: gate,
		form: components.NewForm([]components.TextInput{
			components.NewTextInput("Email", "you@example.com", false, 256),
			components.NewTextInput("Password", "at least 4 characters", true, 128),
			components.NewTextInput("Confirm password", "repeat the password", true, 128),
		}, "Register", "Back to login"),
	}
}

func (s *SignupScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *SignupScreen) Title() string {
	return "Create account"
}

func (s *SignupScreen) ID() nav.ID {
	return nav.Signup
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// Leave discards any registration still in flight.
func (s *SignupScreen) Leave() {
	s.attempt++
	s.busy = false
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

func (s *SignupScreen) handleEnter() (screen.Screen, tea.Cmd) {
	if a, ok := s.form.FocusedAction(); ok {
		if a == actionLogin {
			return s, router.Navigate(nav.Login)
		}
		return s, s.submit()
	}
	if s.form.OnLastInput() {
		return s, s.submit()
	}
	return s, s.form.Next()
}

func (s *SignupScreen) submit() tea.Cmd {
	if s.busy {
		return nil
	}
	creds := auth.Credentials{
		Email:           s.form.Value(fieldEmail),
		Password:        s.form.Value(fieldPassword),
		ConfirmPassword: s.form.Value(fieldConfirm),
	}
	if err := auth.ValidateRegister(creds); err != nil {
		s.setStatus(err.Error(), true)
		return nil
	}

	s.attempt++
	s.busy = true
	s.setStatus("Creating account...", false)

	attempt, gate := s.attempt, s.gate
	return func() tea.Msg {
		user, err := gate.Register(context.Background(), creds)
		return resultMsg{attempt: attempt, email: creds.Email, user: user, err: err}
	}
}

// handleResult shows the outcome. A failed profile write keeps the user
// signed in but stays on this screen with the error.
func (s *SignupScreen) handleResult(msg resultMsg) (screen.Screen, tea.Cmd) {
	if msg.attempt != s.attempt {
		return s, nil
	}
	s.busy = false
	if msg.err != nil {
		s.setStatus(msg.err.Error(), true)
		return s, nil
	}
	s.setStatus("Account created.", false)
	return s, tea.Batch(
		components.ShowToast("Registration successful for "+msg.email),
		router.Navigate(nav.Login),
	)
}

func (s *SignupScreen) setStatus(text string, problem bool) {
	s.status = text
	s.problem = problem
}

func (s *SignupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := strings.Join([]string{
		components.Heading("Create your Scholar account"),
		"",
		s.form.View(),
		"",
		components.Status(s.status, s.problem),
	}, "\n")
	return components.Centered(theme.Card.Width(cw).Render(body), width, height)
}
