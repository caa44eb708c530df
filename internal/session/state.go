// Package session holds the quiz session controller: the loading state
// machine for a quiz screen and the per-card answer state.
package session

// Phase is the loading phase of a quiz session.
type Phase int

const (
	PhaseIdle    Phase = iota // Nothing requested yet
	PhaseLoading              // Fetch in flight, progress advancing
	PhaseLoaded               // Items available
	PhaseErrored              // Fetch failed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// Answer is the state of an answered card. Unanswered cards have no Answer.
type Answer struct {
	Selected string
	Correct  bool
}
