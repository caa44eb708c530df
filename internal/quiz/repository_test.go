package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scholar/internal/backend"
)

type fakeDocs struct {
	records []backend.Record
	getErr  error
	addErr  error
	adds    []map[string]any
	addColl []string
}

func (f *fakeDocs) AddDocument(_ context.Context, collection string, fields map[string]any) (string, error) {
	f.adds = append(f.adds, fields)
	f.addColl = append(f.addColl, collection)
	if f.addErr != nil {
		return "", f.addErr
	}
	return "new-id", nil
}

func (f *fakeDocs) GetDocuments(context.Context, string) ([]backend.Record, error) {
	return f.records, f.getErr
}

func (f *fakeDocs) SetDocument(context.Context, string, string, map[string]any) error {
	return errors.New("unexpected SetDocument")
}

func sampleItem() Item {
	return Item{
		Question:      "2 + 2 = ?",
		Options:       [OptionCount]string{"2", "3", "4", "5"},
		CorrectAnswer: "4",
	}
}

func TestFetchAll_MapsPositionalOptions(t *testing.T) {
	docs := &fakeDocs{records: []backend.Record{
		{ID: "a", Fields: map[string]any{
			"question": "2 + 2 = ?", "option1": "2", "option2": "3", "option3": "4", "option4": "5",
			"correctAnswer": "4",
		}},
		{ID: "b", Fields: map[string]any{
			"question": "3 * 3 = ?", "option1": "6", "option2": "9", "option4": "12",
			"correctAnswer": "9",
		}},
	}}
	repo := NewRepository(docs)

	items, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, sampleItem(), items[0])
	assert.Equal(t, "", items[1].Options[2], "missing option3 reads as empty")
	assert.Equal(t, "12", items[1].Options[3])
}

func TestFetchAll_ToleratesWrongTypes(t *testing.T) {
	docs := &fakeDocs{records: []backend.Record{
		{ID: "a", Fields: map[string]any{"question": 42.0, "option1": "x"}},
	}}

	items, err := NewRepository(docs).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Question)
	assert.Equal(t, "x", items[0].Options[0])
	assert.Equal(t, "", items[0].CorrectAnswer)
}

func TestFetchAll_ErrorPassesMessageThrough(t *testing.T) {
	docs := &fakeDocs{getErr: errors.New("PERMISSION_DENIED: missing permissions")}

	_, err := NewRepository(docs).FetchAll(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "PERMISSION_DENIED: missing permissions", err.Error())
}

func TestSubmit_Complete(t *testing.T) {
	docs := &fakeDocs{}

	err := NewRepository(docs).Submit(context.Background(), sampleItem())
	require.NoError(t, err)

	require.Len(t, docs.adds, 1)
	assert.Equal(t, backend.CollectionQuizzes, docs.addColl[0])
	assert.Equal(t, map[string]any{
		"question": "2 + 2 = ?", "option1": "2", "option2": "3", "option3": "4", "option4": "5",
		"correctAnswer": "4",
	}, docs.adds[0])
}

func TestSubmit_IncompleteMakesNoRemoteCall(t *testing.T) {
	blankers := map[string]func(*Item){
		"question": func(it *Item) { it.Question = "" },
		"option1":  func(it *Item) { it.Options[0] = "" },
		"option2":  func(it *Item) { it.Options[1] = "" },
		"option3":  func(it *Item) { it.Options[2] = "" },
		"option4":  func(it *Item) { it.Options[3] = "" },
		"answer":   func(it *Item) { it.CorrectAnswer = "" },
	}

	for name, blank := range blankers {
		t.Run(name, func(t *testing.T) {
			docs := &fakeDocs{}
			it := sampleItem()
			blank(&it)

			err := NewRepository(docs).Submit(context.Background(), it)
			assert.ErrorIs(t, err, ErrIncomplete)
			assert.Empty(t, docs.adds)
		})
	}
}

func TestSubmit_AnswerNotAmongOptionsIsAccepted(t *testing.T) {
	docs := &fakeDocs{}
	it := sampleItem()
	it.CorrectAnswer = "four"

	require.NoError(t, NewRepository(docs).Submit(context.Background(), it))
	assert.Len(t, docs.adds, 1)
	assert.False(t, it.HasAnswerOption())
}

func TestSubmit_BackendError(t *testing.T) {
	docs := &fakeDocs{addErr: errors.New("quota exceeded")}

	err := NewRepository(docs).Submit(context.Background(), sampleItem())

	var se *SubmitError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "quota exceeded", err.Error())
	assert.Len(t, docs.adds, 1, "no retry")
}

func TestItemIsCorrect(t *testing.T) {
	it := sampleItem()
	assert.True(t, it.IsCorrect("4"))
	assert.False(t, it.IsCorrect("3"))
	assert.True(t, it.HasAnswerOption())
}
