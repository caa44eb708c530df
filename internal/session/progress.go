package session

// DefaultSteps is the number of discrete progress steps in one load.
const DefaultSteps = 100

// progress tracks the simulated loading bar. It is cosmetic and never
// derived from the fetch itself.
type progress struct {
	steps int
	step  int
}

func newProgress(steps int) progress {
	if steps <= 0 {
		steps = DefaultSteps
	}
	return progress{steps: steps}
}

// advance moves one step forward and reports whether another step remains.
func (p *progress) advance() bool {
	if p.step >= p.steps {
		return false
	}
	p.step++
	return p.step < p.steps
}

func (p *progress) reset() { p.step = 0 }

// fraction returns the progress in the range 0..1.
func (p progress) fraction() float64 {
	return float64(p.step) / float64(p.steps)
}
