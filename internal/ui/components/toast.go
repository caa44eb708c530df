package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/ui/theme"
)

// ShowToastMsg asks the app shell to display a toast. Toasts outlive the
// screen that raised them.
type ShowToastMsg struct {
	Text string
}

// ShowToast returns a command that emits a ShowToastMsg.
func ShowToast(text string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Text: text} }
}

// ToastExpiredMsg hides the toast with the matching sequence number.
type ToastExpiredMsg struct {
	Seq int
}

// Toast is a transient confirmation shown in addition to inline text.
type Toast struct {
	Text string
	seq  int
}

// Show displays text and returns a command that hides it after d.
func (t *Toast) Show(text string, d time.Duration) tea.Cmd {
	t.seq++
	t.Text = text
	seq := t.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Update hides the toast when its expiry arrives. Expiries for earlier
// toasts are ignored.
func (t Toast) Update(msg tea.Msg) Toast {
	if m, ok := msg.(ToastExpiredMsg); ok && m.Seq == t.seq {
		t.Text = ""
	}
	return t
}

// Visible reports whether a toast is showing.
func (t Toast) Visible() bool {
	return t.Text != ""
}

// View renders the toast, or nothing when hidden.
func (t Toast) View() string {
	if t.Text == "" {
		return ""
	}
	return theme.Toast.Render(t.Text)
}
