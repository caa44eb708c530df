package quiz

import (
	"context"
	"errors"
	"strconv"

	"github.com/abhisek/scholar/internal/backend"
)

// Document field names.
const (
	fieldQuestion      = "question"
	fieldCorrectAnswer = "correctAnswer"
	fieldOptionPrefix  = "option" // option1..option4
)

// ErrIncomplete is returned by Submit when any of the six fields is empty.
// No remote write is attempted.
var ErrIncomplete = errors.New("all fields are required")

// FetchError wraps a backend failure while listing items. Its message is
// the backend's message, unchanged.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// SubmitError wraps a backend failure while storing an item.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string { return e.Err.Error() }

func (e *SubmitError) Unwrap() error { return e.Err }

// Repository reads and writes quiz items in one document collection.
type Repository struct {
	docs       backend.DocumentStore
	collection string
}

// NewRepository creates a Repository over the MathQuiz collection.
func NewRepository(docs backend.DocumentStore) *Repository {
	return &Repository{docs: docs, collection: backend.CollectionQuizzes}
}

// FetchAll returns every item in store order. Missing or non-string fields
// read as "" rather than failing the batch.
func (r *Repository) FetchAll(ctx context.Context) ([]Item, error) {
	records, err := r.docs.GetDocuments(ctx, r.collection)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	items := make([]Item, 0, len(records))
	for _, rec := range records {
		items = append(items, itemFromRecord(rec))
	}
	return items, nil
}

// Submit stores a new item. Incomplete items return ErrIncomplete without
// touching the store.
func (r *Repository) Submit(ctx context.Context, it Item) error {
	if !it.Complete() {
		return ErrIncomplete
	}
	if _, err := r.docs.AddDocument(ctx, r.collection, itemToFields(it)); err != nil {
		return &SubmitError{Err: err}
	}
	return nil
}

func optionField(i int) string {
	return fieldOptionPrefix + strconv.Itoa(i+1)
}

func itemFromRecord(rec backend.Record) Item {
	it := Item{
		Question:      rec.String(fieldQuestion),
		CorrectAnswer: rec.String(fieldCorrectAnswer),
	}
	for i := range it.Options {
		it.Options[i] = rec.String(optionField(i))
	}
	return it
}

func itemToFields(it Item) map[string]any {
	fields := map[string]any{
		fieldQuestion:      it.Question,
		fieldCorrectAnswer: it.CorrectAnswer,
	}
	for i, o := range it.Options {
		fields[optionField(i)] = o
	}
	return fields
}
