package session

// Summary tallies the answer state of a loaded session.
type Summary struct {
	Total    int
	Answered int
	Correct  int
}

// Summary counts the loaded cards and their current answers.
func (c *Controller) Summary() Summary {
	s := Summary{Total: len(c.items)}
	for _, a := range c.answers {
		s.Answered++
		if a.Correct {
			s.Correct++
		}
	}
	return s
}
