// Package quiz holds the quiz item model and the repository client that
// reads and writes items in the document store.
package quiz

// OptionCount is the fixed number of answer options per item.
const OptionCount = 4

// Item is one question with four answer options and a designated correct
// answer. CorrectAnswer is not required to equal one of the options.
type Item struct {
	Question      string
	Options       [OptionCount]string
	CorrectAnswer string
}

// Complete reports whether all six fields are non-empty.
func (it Item) Complete() bool {
	if it.Question == "" || it.CorrectAnswer == "" {
		return false
	}
	for _, o := range it.Options {
		if o == "" {
			return false
		}
	}
	return true
}

// IsCorrect reports whether option is the correct answer.
func (it Item) IsCorrect(option string) bool {
	return option == it.CorrectAnswer
}

// HasAnswerOption reports whether CorrectAnswer matches one of the options.
func (it Item) HasAnswerOption() bool {
	for _, o := range it.Options {
		if o == it.CorrectAnswer {
			return true
		}
	}
	return false
}
