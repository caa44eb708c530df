package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Form is a vertical focus ring of text inputs followed by action buttons.
// Tab and the arrow keys move focus; other keys go to the focused input.
type Form struct {
	Inputs  []TextInput
	Actions []string
	focus   int
}

// NewForm creates a form. Focus starts on the first input.
func NewForm(inputs []TextInput, actions ...string) Form {
	return Form{Inputs: inputs, Actions: actions}
}

// Init focuses the first element.
func (f *Form) Init() tea.Cmd {
	return f.setFocus(0)
}

func (f *Form) size() int {
	return len(f.Inputs) + len(f.Actions)
}

func (f *Form) setFocus(i int) tea.Cmd {
	n := f.size()
	if n == 0 {
		return nil
	}
	f.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j := range f.Inputs {
		if j == f.focus {
			cmd = f.Inputs[j].Focus()
		} else {
			f.Inputs[j].Blur()
		}
	}
	return cmd
}

// Next moves focus forward, wrapping around.
func (f *Form) Next() tea.Cmd { return f.setFocus(f.focus + 1) }

// Prev moves focus backward, wrapping around.
func (f *Form) Prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// FocusIndex returns the focused element: inputs first, then actions.
func (f Form) FocusIndex() int { return f.focus }

// FocusedAction returns the index of the focused action button.
func (f Form) FocusedAction() (int, bool) {
	if f.focus < len(f.Inputs) {
		return 0, false
	}
	return f.focus - len(f.Inputs), true
}

// OnLastInput reports whether the last input has focus.
func (f Form) OnLastInput() bool {
	return len(f.Inputs) > 0 && f.focus == len(f.Inputs)-1
}

// Update handles focus keys and forwards everything else to the focused
// input. Enter is left to the caller.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.Next()
		case "shift+tab", "up":
			return f, f.Prev()
		}
	}

	if f.focus < len(f.Inputs) {
		var cmd tea.Cmd
		f.Inputs[f.focus], cmd = f.Inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

// Value returns the value of input i.
func (f Form) Value(i int) string {
	return f.Inputs[i].Value()
}

// Reset clears every input and focuses the first.
func (f *Form) Reset() tea.Cmd {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
	return f.setFocus(0)
}

// View renders the inputs and the action row.
func (f Form) View() string {
	var parts []string
	for _, in := range f.Inputs {
		parts = append(parts, in.View())
	}

	var buttons []string
	for i, label := range f.Actions {
		b := Button{Label: label, Focused: f.focus == len(f.Inputs)+i}
		buttons = append(buttons, b.View())
	}
	if len(buttons) > 0 {
		parts = append(parts, "", strings.Join(buttons, "  "))
	}
	return strings.Join(parts, "\n")
}
