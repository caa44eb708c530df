package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scholar/internal/ui/theme"
)

// Tiles is a grid of labelled tiles navigated with the arrow keys.
type Tiles struct {
	Labels   []string
	Columns  int
	Selected int
	OnSelect func(label string) tea.Cmd
}

// NewTiles creates a tile grid. OnSelect receives the label of the tile
// chosen with enter.
func NewTiles(labels []string, columns int, onSelect func(label string) tea.Cmd) Tiles {
	if columns < 1 {
		columns = 1
	}
	return Tiles{
		Labels:   labels,
		Columns:  columns,
		OnSelect: onSelect,
	}
}

// Update handles keyboard navigation.
func (t Tiles) Update(msg tea.Msg) (Tiles, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(t.Labels) == 0 {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if t.Selected%t.Columns > 0 {
			t.Selected--
		}
	case "right", "l":
		if t.Selected%t.Columns < t.Columns-1 && t.Selected+1 < len(t.Labels) {
			t.Selected++
		}
	case "up", "k":
		if t.Selected-t.Columns >= 0 {
			t.Selected -= t.Columns
		}
	case "down", "j":
		if t.Selected+t.Columns < len(t.Labels) {
			t.Selected += t.Columns
		}
	case "enter":
		if t.OnSelect != nil {
			return t, t.OnSelect(t.Labels[t.Selected])
		}
	}

	return t, nil
}

// Current returns the label of the highlighted tile.
func (t Tiles) Current() string {
	if len(t.Labels) == 0 {
		return ""
	}
	return t.Labels[t.Selected]
}

// View renders the grid with each tile tileWidth columns wide.
func (t Tiles) View(tileWidth int) string {
	var rows []string
	for start := 0; start < len(t.Labels); start += t.Columns {
		end := start + t.Columns
		if end > len(t.Labels) {
			end = len(t.Labels)
		}
		var cells []string
		for i := start; i < end; i++ {
			style := theme.TileInactive
			label := t.Labels[i]
			if i == t.Selected {
				style = theme.TileActive
				label = "▸ " + label
			}
			cells = append(cells, style.Width(tileWidth).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
