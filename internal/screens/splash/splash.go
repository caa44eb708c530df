package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/router"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

// loading dots cycle under the banner
var dotFrames = []string{".", "..", "..."}

type tickMsg time.Time

// SplashScreen shows the banner for a fixed delay, then hands over to login.
type SplashScreen struct {
	delay        time.Duration
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen that moves on after delay.
func New(delay time.Duration) *SplashScreen {
	return &SplashScreen{delay: delay}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) ID() nav.ID {
	return nav.Splash
}

func (s *SplashScreen) Init() tea.Cmd {
	if s.delay <= 0 {
		return s.transition()
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok || s.transitioned {
		return s, nil
	}

	s.elapsed += tickInterval
	s.tickCount++
	if s.elapsed >= s.delay {
		return s, s.transition()
	}
	return s, tick()
}

func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	return router.Navigate(nav.Login)
}

func (s *SplashScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Welcome to Scholar!"),
		"",
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Loading" + dotFrames[s.tickCount%len(dotFrames)]),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
