package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// ID returns the navigation identity of the screen.
	ID() nav.ID
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens that hold background work which must
// stop once they are covered or removed from the stack.
type Leaver interface {
	Leave()
}

// Resumer is implemented by screens that restart work when they become
// active again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// Factory builds a fresh screen for id.
type Factory func(id nav.ID) Screen
