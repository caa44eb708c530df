package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/ui/theme"
)

// PlaceholderScreen stands in for a screen id the app has no builder for.
type PlaceholderScreen struct {
	id nav.ID
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen for id.
func New(id nav.ID) *PlaceholderScreen {
	return &PlaceholderScreen{id: id}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Unavailable ╌╌\n\nThis screen is not configured.")
}

func (p *PlaceholderScreen) Title() string {
	return p.id.String()
}

func (p *PlaceholderScreen) ID() nav.ID {
	return p.id
}
