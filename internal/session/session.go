package session

import (
	"context"

	"github.com/abhisek/scholar/internal/quiz"
)

// Generation identifies one load attempt. Results and progress ticks that
// carry a stale generation are discarded.
type Generation uint64

// Controller is the state of one quiz screen. It is not safe for concurrent
// use; all calls happen on the UI loop.
type Controller struct {
	phase    Phase
	progress progress
	items    []quiz.Item
	answers  map[int]Answer
	errMsg   string

	gen    Generation
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an idle controller with the given number of progress steps.
func New(steps int) *Controller {
	return &Controller{
		progress: newProgress(steps),
		answers:  make(map[int]Answer),
	}
}

// Begin starts a load: the phase becomes Loading, progress resets, and a new
// generation is issued. The returned context is cancelled when the fetch
// resolves or the session is left, which stops the progress task.
func (c *Controller) Begin() (Generation, context.Context) {
	c.stop()
	c.gen++
	c.phase = PhaseLoading
	c.progress.reset()
	c.items = nil
	c.answers = make(map[int]Answer)
	c.errMsg = ""
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c.gen, c.ctx
}

// Advance moves progress one step for generation g. It reports whether the
// progress task should schedule another step.
func (c *Controller) Advance(g Generation) bool {
	if !c.Live(g) || c.phase != PhaseLoading {
		return false
	}
	return c.progress.advance()
}

// Resolve records the fetch result for generation g. It returns false and
// changes nothing if g is stale or the session was left.
func (c *Controller) Resolve(g Generation, items []quiz.Item, err error) bool {
	if !c.Live(g) || c.phase != PhaseLoading {
		return false
	}
	c.stop()
	if err != nil {
		c.phase = PhaseErrored
		c.errMsg = err.Error()
		return true
	}
	c.phase = PhaseLoaded
	c.items = items
	return true
}

// Select records option as the answer for card index. Correctness is
// re-derived on every call and cards never lock.
func (c *Controller) Select(index int, option string) (Answer, bool) {
	if c.phase != PhaseLoaded || index < 0 || index >= len(c.items) {
		return Answer{}, false
	}
	a := Answer{Selected: option, Correct: c.items[index].IsCorrect(option)}
	c.answers[index] = a
	return a, true
}

// Leave abandons the session. Any in-flight progress task is cancelled and
// results still in flight will be discarded.
func (c *Controller) Leave() {
	c.stop()
	c.gen++
	if c.phase == PhaseLoading {
		c.phase = PhaseIdle
	}
}

// Live reports whether g is the current generation.
func (c *Controller) Live(g Generation) bool {
	return g != 0 && g == c.gen
}

func (c *Controller) stop() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Context returns the context of the current load. It is done once the
// load resolves or the session is left.
func (c *Controller) Context() context.Context {
	if c.ctx == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return c.ctx
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Progress returns the simulated progress in the range 0..1.
func (c *Controller) Progress() float64 { return c.progress.fraction() }

// Items returns the loaded items.
func (c *Controller) Items() []quiz.Item { return c.items }

// Answer returns the answer state of card index.
func (c *Controller) Answer(index int) (Answer, bool) {
	a, ok := c.answers[index]
	return a, ok
}

// Err returns the fetch failure message when the phase is Errored.
func (c *Controller) Err() string { return c.errMsg }
