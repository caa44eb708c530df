package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scholar/internal/config"
	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/router"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/screens/addquiz"
	"github.com/abhisek/scholar/internal/screens/home"
	"github.com/abhisek/scholar/internal/screens/login"
	"github.com/abhisek/scholar/internal/screens/placeholder"
	quizscreen "github.com/abhisek/scholar/internal/screens/quiz"
	"github.com/abhisek/scholar/internal/screens/signup"
	"github.com/abhisek/scholar/internal/screens/splash"
	"github.com/abhisek/scholar/internal/ui/components"
	"github.com/abhisek/scholar/internal/ui/layout"
)

// Gate is the credential gate as the screens use it.
type Gate interface {
	login.Authenticator
	signup.Registrar
	home.Account
}

// Quizzes is the quiz repository as the screens use it.
type Quizzes interface {
	quizscreen.Fetcher
	addquiz.Submitter
}

// Options holds the dependencies injected into the app. The caller owns
// their lifecycle.
type Options struct {
	Gate    Gate
	Quizzes Quizzes
	Config  config.Config
	Logger  *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	toast  components.Toast
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	m := AppModel{opts: opts}
	m.router = router.New(m.build)
	return m
}

// build is the router's screen factory.
func (m AppModel) build(id nav.ID) screen.Screen {
	cfg := m.opts.Config
	switch id {
	case nav.Splash:
		return splash.New(cfg.SplashDelay)
	case nav.Login:
		return login.New(m.opts.Gate)
	case nav.Signup:
		return signup.New(m.opts.Gate)
	case nav.Home:
		return home.New(m.opts.Gate)
	case nav.Quiz:
		return quizscreen.New(m.opts.Quizzes, cfg.ProgressSteps, cfg.ProgressStepDelay)
	case nav.AddQuiz:
		return addquiz.New(m.opts.Quizzes)
	}
	m.opts.Logger.Warn("no screen for id", "screen", id.String())
	return placeholder.New(id)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case components.ShowToastMsg:
		cmd := m.toast.Show(msg.Text, m.opts.Config.ToastDuration)
		return m, cmd

	case components.ToastExpiredMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case router.NavigateMsg:
		from := m.router.Active().ID()
		cmd := m.router.Update(msg)
		m.opts.Logger.Debug("navigate", "from", from.String(), "to", msg.To.String(),
			"active", m.router.Active().ID().String(), "depth", m.router.Depth())
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.account(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	toast := ""
	if m.toast.Visible() {
		toast = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.toast.View())
		contentHeight -= lipgloss.Height(toast)
	}
	contentHeight = max(contentHeight, 0)

	content := m.router.View(m.width, contentHeight)
	if toast != "" {
		content += "\n" + toast
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) account() string {
	if m.opts.Gate == nil {
		return ""
	}
	if u := m.opts.Gate.CurrentUser(); u != nil {
		return u.Email
	}
	return ""
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

