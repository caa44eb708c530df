package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scholar/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for forms and cards so
// they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Centered places content in the middle of the given area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Heading renders a screen heading.
func Heading(text string) string {
	return theme.Title.Render(text)
}

// Status renders an inline message: problems in the error color, notices in
// the success color. Empty text renders as an empty line.
func Status(text string, problem bool) string {
	if text == "" {
		return ""
	}
	if problem {
		return theme.Problem.Render(text)
	}
	return theme.Notice.Render(text)
}
