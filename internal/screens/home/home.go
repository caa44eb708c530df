package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/backend"
	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/router"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/ui/components"
	"github.com/abhisek/scholar/internal/ui/layout"
	"github.com/abhisek/scholar/internal/ui/theme"
)

// Account reports who is signed in.
type Account interface {
	CurrentUser() *backend.UserHandle
}

// HomeScreen is the course picker shown after sign-in.
type HomeScreen struct {
	account Account
	tiles   components.Tiles
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(account Account) *HomeScreen {
	return &HomeScreen{
		account: account,
		tiles:   components.NewTiles(Courses, 2, selectCourse),
	}
}

// selectCourse navigates only for the math course; other tiles do nothing.
func selectCourse(label string) tea.Cmd {
	if label != MathCourse {
		return nil
	}
	return router.Navigate(nav.Quiz)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) ID() nav.ID {
	return nav.Home
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Navigate"},
		{Key: "Enter", Description: "Open course"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.tiles, cmd = h.tiles.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{components.Heading("Welcome to the home page")}
	if h.account != nil {
		if u := h.account.CurrentUser(); u != nil {
			sections = append(sections, theme.Subtitle.Render("Signed in as "+u.Email))
		}
	}
	sections = append(sections, "", h.tiles.View(cw/2-1))

	return components.Centered(strings.Join(sections, "\n"), width, height)
}
