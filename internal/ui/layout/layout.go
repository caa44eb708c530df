// Package layout draws the app chrome around the active screen: a header
// with the product name, screen title and signed-in account, and a footer
// with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scholar/internal/ui/theme"
)

// Smallest terminal the forms and quiz cards fit in.
const (
	MinWidth  = 64
	MinHeight = 22
)

const (
	brand     = "Scholar"
	hintSep   = "  ·  "
	barMargin = 4 // border plus one space each side
)

// KeyHint is one key and what it does, shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

var (
	bar = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	brandStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	accountStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle     = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle    = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	lines := []string{
		"Terminal too small!",
		"",
		fmt.Sprintf("Scholar needs at least %d x %d.", MinWidth, MinHeight),
		fmt.Sprintf("Current: %d x %d", width, height),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		titleStyle.Render(strings.Join(lines, "\n")))
}

// RenderHeader draws the brand on the left, title centred and, when someone
// is signed in, their account on the right.
func RenderHeader(title, account string, width int) string {
	inner := max(width-barMargin, 0)

	left := brandStyle.Render(brand)
	right := ""
	if account != "" {
		right = accountStyle.Render("● " + account)
	}

	// Centre the title in whatever the two ends leave free.
	side := max(lipgloss.Width(left), lipgloss.Width(right))
	middle := max(inner-2*side, 0)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, left),
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, titleStyle.Render(title)),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right),
	)
	return bar.Width(width).Render(row)
}

// RenderFooter draws the key hints in one row.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar.Width(width).Render(strings.Join(parts, hintSep))
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the bars do not use.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
