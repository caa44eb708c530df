package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/scholar/internal/quiz"
	"github.com/abhisek/scholar/internal/ui/theme"
)

// QuizCard renders one quiz item. Cards never lock: the highlighted answer
// is whatever was chosen last.
type QuizCard struct {
	Number   int
	Item     quiz.Item
	Answered bool
	Selected string
	Correct  bool
	Focused  bool
}

// View renders the card at the given width.
func (c QuizCard) View(width int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", c.Number, c.Item.Question)))
	b.WriteString("\n")

	for i, opt := range c.Item.Options {
		marker := "○"
		style := theme.Unselected
		if c.Answered && opt == c.Selected {
			marker = "●"
			if c.Correct {
				style = theme.Correct
			} else {
				style = theme.Incorrect
			}
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %d) %s", marker, i+1, opt)))
		b.WriteString("\n")
	}

	if c.Answered {
		if c.Correct {
			b.WriteString(theme.Correct.Render("Correct answer!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Wrong answer"))
		}
	} else {
		b.WriteString(theme.Hint.Render("Choose an option"))
	}

	style := theme.Card
	if c.Focused {
		style = theme.FocusedCard
	}
	return style.Width(width).Render(b.String())
}
