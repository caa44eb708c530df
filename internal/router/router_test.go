package router

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	id      nav.ID
	initRan bool
	left    int
	resumed int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.id.String() }
func (s *stubScreen) Title() string                           { return s.id.String() }
func (s *stubScreen) ID() nav.ID                              { return s.id }
func (s *stubScreen) Leave()                                  { s.left++ }
func (s *stubScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

// recordingFactory builds stub screens and remembers every one it built.
type recordingFactory struct {
	built []*stubScreen
}

func (f *recordingFactory) build(id nav.ID) screen.Screen {
	s := &stubScreen{id: id}
	f.built = append(f.built, s)
	return s
}

func (f *recordingFactory) last(id nav.ID) *stubScreen {
	for i := len(f.built) - 1; i >= 0; i-- {
		if f.built[i].id == id {
			return f.built[i]
		}
	}
	return nil
}

func newTestRouter() (*Router, *recordingFactory) {
	f := &recordingFactory{}
	return New(f.build), f
}

func assertHistory(t *testing.T, r *Router, want ...nav.ID) {
	t.Helper()
	if got := r.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected history %v, got %v", want, got)
	}
}

func TestNewStartsAtSplash(t *testing.T) {
	r, _ := newTestRouter()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().ID() != nav.Splash {
		t.Errorf("expected splash, got %v", r.Active().ID())
	}
}

func TestPush(t *testing.T) {
	r, f := newTestRouter()

	s2 := &stubScreen{id: nav.Login}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if f.last(nav.Splash).left != 1 {
		t.Error("expected covered screen to be left")
	}
}

func TestPopResumesRevealedScreen(t *testing.T) {
	r, f := newTestRouter()
	top := &stubScreen{id: nav.Login}
	r.Push(top)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if top.left != 1 {
		t.Error("expected popped screen to be left")
	}
	if f.last(nav.Splash).resumed != 1 {
		t.Error("expected revealed screen to resume")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r, _ := newTestRouter()

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r, f := newTestRouter()

	s2 := &stubScreen{id: nav.Login}
	r.Replace(s2)

	assertHistory(t, r, nav.Login)
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
	if f.last(nav.Splash).left != 1 {
		t.Error("expected replaced screen to be left")
	}
}

func TestPopUpToWithoutAnchorPushes(t *testing.T) {
	r, _ := newTestRouter()

	r.PopUpTo(nav.Login, &stubScreen{id: nav.Home})

	assertHistory(t, r, nav.Splash, nav.Home)
}

func TestNavigateSplashLoginHome(t *testing.T) {
	r, _ := newTestRouter()

	r.Update(NavigateMsg{To: nav.Login})
	assertHistory(t, r, nav.Login)

	r.Update(NavigateMsg{To: nav.Home})
	assertHistory(t, r, nav.Home)

	// Back from Home cannot reach Login or Splash.
	r.Update(PopScreenMsg{})
	assertHistory(t, r, nav.Home)
}

func TestNavigateLoginAfterSignupRoundTrip(t *testing.T) {
	r, f := newTestRouter()

	r.Navigate(nav.Login)
	r.Navigate(nav.Signup)
	r.Navigate(nav.Login)
	assertHistory(t, r, nav.Login, nav.Signup, nav.Login)

	r.Navigate(nav.Home)
	assertHistory(t, r, nav.Login, nav.Signup, nav.Home)

	if f.last(nav.Login).left != 1 {
		t.Error("expected removed login screen to be left")
	}
}

func TestNavigateHomeQuizAddQuiz(t *testing.T) {
	r, f := newTestRouter()
	r.Navigate(nav.Login)
	r.Navigate(nav.Home)

	r.Navigate(nav.Quiz)
	r.Navigate(nav.AddQuiz)
	assertHistory(t, r, nav.Home, nav.Quiz, nav.AddQuiz)

	quiz := f.last(nav.Quiz)
	if quiz.left != 1 {
		t.Errorf("expected quiz to be left once when covered, got %d", quiz.left)
	}

	r.Pop()
	if quiz.resumed != 1 {
		t.Errorf("expected quiz to resume once, got %d", quiz.resumed)
	}
	assertHistory(t, r, nav.Home, nav.Quiz)
}

func TestNavigateUndefinedIsNoop(t *testing.T) {
	r, f := newTestRouter()
	r.Navigate(nav.Login)
	r.Navigate(nav.Home)
	built := len(f.built)

	for _, to := range []nav.ID{nav.Splash, nav.Login, nav.Signup, nav.AddQuiz, nav.Home} {
		if cmd := r.Navigate(to); cmd != nil {
			t.Errorf("expected nil cmd for home -> %v", to)
		}
	}

	assertHistory(t, r, nav.Home)
	if len(f.built) != built {
		t.Error("expected no screens built for undefined transitions")
	}
}

func TestNavigateHelper(t *testing.T) {
	msg := Navigate(nav.Quiz)()
	nm, ok := msg.(NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", msg)
	}
	if nm.To != nav.Quiz {
		t.Errorf("expected quiz, got %v", nm.To)
	}
}
