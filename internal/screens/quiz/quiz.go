package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/nav"
	qz "github.com/abhisek/scholar/internal/quiz"
	"github.com/abhisek/scholar/internal/router"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/session"
	"github.com/abhisek/scholar/internal/ui/layout"
)

// Fetcher lists quiz items.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]qz.Item, error)
}

// QuizScreen loads the math quiz and lets the user answer each card.
type QuizScreen struct {
	fetcher   Fetcher
	ctrl      *session.Controller
	stepDelay time.Duration
	focus     int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Leaver = (*QuizScreen)(nil)
var _ screen.Resumer = (*QuizScreen)(nil)

// New creates a QuizScreen whose loading bar has steps steps, stepDelay
// apart.
func New(fetcher Fetcher, steps int, stepDelay time.Duration) *QuizScreen {
	return &QuizScreen{
		fetcher:   fetcher,
		ctrl:      session.New(steps),
		stepDelay: stepDelay,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.start()
}

func (s *QuizScreen) Title() string {
	return "Math Quiz"
}

func (s *QuizScreen) ID() nav.ID {
	return nav.Quiz
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Card"},
		{Key: "1-4", Description: "Answer"},
		{Key: "A", Description: "Add quiz"},
	}
	if s.ctrl.Phase() == session.PhaseErrored {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Reload"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Leave stops the loading bar and orphans any fetch still in flight.
func (s *QuizScreen) Leave() {
	s.ctrl.Leave()
}

// Resume reloads, so items added while away show up.
func (s *QuizScreen) Resume() tea.Cmd {
	return s.start()
}

// start issues the fetch and the progress task together.
func (s *QuizScreen) start() tea.Cmd {
	gen, ctx := s.ctrl.Begin()
	s.focus = 0
	return tea.Batch(s.fetch(gen), progressStep(ctx, gen, s.stepDelay))
}

// fetch runs without a deadline; a result for a stale generation is
// dropped by the controller.
func (s *QuizScreen) fetch(gen session.Generation) tea.Cmd {
	fetcher := s.fetcher
	return func() tea.Msg {
		items, err := fetcher.FetchAll(context.Background())
		return fetchedMsg{gen: gen, items: items, err: err}
	}
}

// progressStep waits one step, or returns nothing once ctx is cancelled.
func progressStep(ctx context.Context, gen session.Generation, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			return progressMsg{gen: gen}
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		if s.ctrl.Advance(msg.gen) {
			return s, progressStep(s.ctrl.Context(), msg.gen, s.stepDelay)
		}
		return s, nil

	case fetchedMsg:
		s.ctrl.Resolve(msg.gen, msg.items, msg.err)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "a", "A", "+":
		return s, router.Navigate(nav.AddQuiz)
	case "r", "R":
		if s.ctrl.Phase() == session.PhaseErrored {
			return s, s.start()
		}
		return s, nil
	case "up", "k":
		if s.focus > 0 {
			s.focus--
		}
		return s, nil
	case "down", "j":
		if s.focus < len(s.ctrl.Items())-1 {
			s.focus++
		}
		return s, nil
	case "1", "2", "3", "4":
		items := s.ctrl.Items()
		if s.focus < len(items) {
			opt := int(key[0] - '1')
			s.ctrl.Select(s.focus, items[s.focus].Options[opt])
		}
		return s, nil
	}
	return s, nil
}
