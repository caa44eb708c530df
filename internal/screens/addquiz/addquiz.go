package addquiz

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/nav"
	qz "github.com/abhisek/scholar/internal/quiz"
	"github.com/abhisek/scholar/internal/screen"
	"github.com/abhisek/scholar/internal/ui/components"
	"github.com/abhisek/scholar/internal/ui/layout"
	"github.com/abhisek/scholar/internal/ui/theme"
)

// Submitter stores a new quiz item.
type Submitter interface {
	Submit(ctx context.Context, it qz.Item) error
}

const (
	fieldQuestion = 0
	fieldAnswer   = 1 + qz.OptionCount
)

const successToast = "Quiz added successfully!"

type resultMsg struct {
	attempt int
	err     error
}

// AddQuizScreen is the authoring form for a new quiz item.
type AddQuizScreen struct {
	repo    Submitter
	form    components.Form
	attempt int
	busy    bool
	status  string
	problem bool
}

var _ screen.Screen = (*AddQuizScreen)(nil)
var _ screen.KeyHintProvider = (*AddQuizScreen)(nil)
var _ screen.Leaver = (*AddQuizScreen)(nil)

// New creates an AddQuizScreen.
func New(repo Submitter) *AddQuizScreen {
	inputs := []components.TextInput{
		components.NewTextInput("Question", "What is 6 x 7?", false, 512),
	}
	for i := 1; i <= qz.OptionCount; i++ {
		inputs = append(inputs, components.NewTextInput("Option "+string(rune('0'+i)), "", false, 256))
	}
	inputs = append(inputs, components.NewTextInput("Correct answer", "must match an option to be gradable", false, 256))

	return &AddQuizScreen{
		repo: repo,
		form: components.NewForm(inputs, "Add quiz"),
	}
}

func (s *AddQuizScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *AddQuizScreen) Title() string {
	return "Add quiz"
}

func (s *AddQuizScreen) ID() nav.ID {
	return nav.AddQuiz
}

func (s *AddQuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// Leave drops the outcome of a submission still in flight. The write itself
// is not cancelled.
func (s *AddQuizScreen) Leave() {
	s.attempt++
	s.busy = false
}

func (s *AddQuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		return s.handleResult(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if _, ok := s.form.FocusedAction(); ok || s.form.OnLastInput() {
				return s, s.submit()
			}
			return s, s.form.Next()
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *AddQuizScreen) item() qz.Item {
	it := qz.Item{
		Question:      s.form.Value(fieldQuestion),
		CorrectAnswer: s.form.Value(fieldAnswer),
	}
	for i := range it.Options {
		it.Options[i] = s.form.Value(fieldQuestion + 1 + i)
	}
	return it
}

// submit checks completeness before any remote call.
func (s *AddQuizScreen) submit() tea.Cmd {
	if s.busy {
		return nil
	}
	it := s.item()
	if !it.Complete() {
		s.setStatus(qz.ErrIncomplete.Error(), true)
		return nil
	}

	s.attempt++
	s.busy = true
	s.setStatus("Saving...", false)

	attempt, repo := s.attempt, s.repo
	return func() tea.Msg {
		return resultMsg{attempt: attempt, err: repo.Submit(context.Background(), it)}
	}
}

func (s *AddQuizScreen) handleResult(msg resultMsg) (screen.Screen, tea.Cmd) {
	if msg.attempt != s.attempt {
		return s, nil
	}
	s.busy = false
	if msg.err != nil {
		s.setStatus("Error: "+msg.err.Error(), true)
		return s, nil
	}
	s.setStatus("Quiz added.", false)
	return s, tea.Batch(s.form.Reset(), components.ShowToast(successToast))
}

func (s *AddQuizScreen) setStatus(text string, problem bool) {
	s.status = text
	s.problem = problem
}

func (s *AddQuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := strings.Join([]string{
		components.Heading("Add a new quiz"),
		"",
		s.form.View(),
		"",
		components.Status(s.status, s.problem),
	}, "\n")
	return components.Centered(theme.Card.Width(cw).Render(body), width, height)
}
