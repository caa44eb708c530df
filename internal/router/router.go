package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/screen"
)

// NavigateMsg requests a transition from the active screen to To. The
// router applies it only if the transition table allows it.
type NavigateMsg struct {
	To nav.ID
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(to nav.ID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// Router manages a stack of screens.
type Router struct {
	stack   []screen.Screen
	factory screen.Factory
}

// New creates a Router whose stack starts with the initial screen.
func New(factory screen.Factory) *Router {
	return &Router{
		stack:   []screen.Screen{factory(nav.Initial)},
		factory: factory,
	}
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	if a := r.Active(); a != nil {
		return a.Init()
	}
	return nil
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	leave(r.Active())
	r.stack = append(r.stack, s)
	return s.Init()
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	leave(r.Active())
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// PopUpTo removes screens from the top down to the nearest screen with id
// anchor, including it, then pushes s. Without a matching anchor it behaves
// like Push.
func (r *Router) PopUpTo(anchor nav.ID, s screen.Screen) tea.Cmd {
	idx := -1
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].ID() == anchor {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r.Push(s)
	}
	for _, gone := range r.stack[idx:] {
		leave(gone)
	}
	r.stack = append(r.stack[:idx], s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	leave(r.Active())
	r.stack = r.stack[:len(r.stack)-1]
	if res, ok := r.Active().(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

// Navigate applies the transition from the active screen to to. Undefined
// transitions are ignored.
func (r *Router) Navigate(to nav.ID) tea.Cmd {
	active := r.Active()
	if active == nil {
		return nil
	}
	rule, ok := nav.Lookup(active.ID(), to)
	if !ok {
		return nil
	}

	next := r.factory(to)
	switch rule.Mode {
	case nav.Replace:
		return r.Replace(next)
	case nav.PopUpToInclusive:
		return r.PopUpTo(rule.Anchor, next)
	default:
		return r.Push(next)
	}
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// History returns the screen ids from bottom to top.
func (r *Router) History() []nav.ID {
	ids := make([]nav.ID, len(r.stack))
	for i, s := range r.stack {
		ids[i] = s.ID()
	}
	return ids
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.To)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func leave(s screen.Screen) {
	if l, ok := s.(screen.Leaver); ok {
		l.Leave()
	}
}
