package components

import (
	"github.com/abhisek/scholar/internal/ui/theme"
)

// Button is a form action. The owning form decides what enter does.
type Button struct {
	Label   string
	Focused bool
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
