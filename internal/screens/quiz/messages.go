package quiz

import (
	qz "github.com/abhisek/scholar/internal/quiz"
	"github.com/abhisek/scholar/internal/session"
)

// progressMsg advances the simulated loading bar by one step.
type progressMsg struct {
	gen session.Generation
}

// fetchedMsg carries the result of one fetch.
type fetchedMsg struct {
	gen   session.Generation
	items []qz.Item
	err   error
}
