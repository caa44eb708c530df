package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scholar/internal/backend"
	"github.com/abhisek/scholar/internal/nav"
	"github.com/abhisek/scholar/internal/router"
)

type fakeAccount struct {
	user *backend.UserHandle
}

func (f fakeAccount) CurrentUser() *backend.UserHandle { return f.user }

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// moveTo walks the 2-column grid to the tile at index.
func moveTo(h *HomeScreen, index int) {
	for i := 0; i < index/2; i++ {
		h.Update(keyCode(tea.KeyDown))
	}
	if index%2 == 1 {
		h.Update(keyCode(tea.KeyRight))
	}
}

func TestSixCourses(t *testing.T) {
	require.Len(t, Courses, 6)
	assert.Contains(t, Courses, MathCourse)
}

func TestMathTileNavigatesToQuiz(t *testing.T) {
	h := New(fakeAccount{})
	moveTo(h, 2)
	require.Equal(t, MathCourse, h.tiles.Current())

	_, cmd := h.Update(keyCode(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{To: nav.Quiz}, cmd())
}

func TestOtherTilesAreDeadClicks(t *testing.T) {
	for i, label := range Courses {
		if label == MathCourse {
			continue
		}
		t.Run(label, func(t *testing.T) {
			h := New(fakeAccount{})
			moveTo(h, i)
			require.Equal(t, label, h.tiles.Current())

			_, cmd := h.Update(keyCode(tea.KeyEnter))
			assert.Nil(t, cmd)
		})
	}
}

func TestSelectCourseExactMatch(t *testing.T) {
	assert.NotNil(t, selectCourse(MathCourse))
	assert.Nil(t, selectCourse("mathematics course"))
	assert.Nil(t, selectCourse(MathCourse+" "))
}

func TestViewShowsSignedInUser(t *testing.T) {
	h := New(fakeAccount{user: &backend.UserHandle{UID: "u1", Email: "ada@example.com"}})
	view := h.View(100, 30)

	assert.Contains(t, view, "Signed in as ada@example.com")
	assert.Contains(t, view, "Physics Course")

	assert.NotContains(t, New(fakeAccount{}).View(100, 30), "Signed in as")
}
