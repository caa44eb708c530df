package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/scholar/internal/session"
	"github.com/abhisek/scholar/internal/ui/components"
	"github.com/abhisek/scholar/internal/ui/theme"
)

// cardHeight is the rendered height of one card: border, question, four
// options and the feedback line.
const cardHeight = 8

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.NewProgressBar("", s.ctrl.Progress(), true, cw).View(),
		"",
		components.Heading("Welcome to the quiz page"),
	}

	switch s.ctrl.Phase() {
	case session.PhaseErrored:
		sections = append(sections, "", components.Status("Could not load quizzes: "+s.ctrl.Err(), true))
	case session.PhaseLoaded:
		sections = append(sections, s.renderCards(cw, height-6)...)
	default:
		sections = append(sections, "", theme.Hint.Render("Loading quizzes..."))
	}

	return components.Centered(strings.Join(sections, "\n"), width, height)
}

// renderCards shows as many cards as fit, keeping the focused one visible.
func (s *QuizScreen) renderCards(width, height int) []string {
	items := s.ctrl.Items()
	if len(items) == 0 {
		return []string{"", theme.Hint.Render("No quizzes yet. Press A to add one.")}
	}

	sum := s.ctrl.Summary()
	out := []string{theme.Subtitle.Render(fmt.Sprintf("Score %d/%d · answered %d of %d",
		sum.Correct, sum.Answered, sum.Answered, sum.Total))}

	visible := (height - 2) / cardHeight
	if visible < 1 {
		visible = 1
	}
	first := 0
	if s.focus >= visible {
		first = s.focus - visible + 1
	}
	last := first + visible
	if last > len(items) {
		last = len(items)
	}

	for i := first; i < last; i++ {
		card := components.QuizCard{Number: i + 1, Item: items[i], Focused: i == s.focus}
		if a, ok := s.ctrl.Answer(i); ok {
			card.Answered = true
			card.Selected = a.Selected
			card.Correct = a.Correct
		}
		out = append(out, card.View(width))
	}
	return out
}
