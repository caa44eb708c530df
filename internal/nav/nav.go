// Package nav defines the closed set of screens and the transitions allowed
// between them.
package nav

// ID names a screen.
type ID int

const (
	Splash ID = iota
	Login
	Signup
	Home
	Quiz
	AddQuiz
)

var names = map[ID]string{
	Splash:  "splash",
	Login:   "login",
	Signup:  "signup",
	Home:    "home",
	Quiz:    "quiz",
	AddQuiz: "addquiz",
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return "unknown"
}

// Initial is the screen the app starts on.
const Initial = Splash

// Mode is how a transition changes the history stack.
type Mode int

const (
	// Push keeps the current screen below the new one.
	Push Mode = iota
	// Replace swaps the current screen for the new one.
	Replace
	// PopUpToInclusive removes every screen down to and including Anchor,
	// then pushes the new one.
	PopUpToInclusive
)

// Rule describes one permitted transition.
type Rule struct {
	From, To ID
	Mode     Mode
	Anchor   ID
}

var rules = []Rule{
	{From: Splash, To: Login, Mode: Replace},
	{From: Login, To: Home, Mode: PopUpToInclusive, Anchor: Login},
	{From: Login, To: Signup, Mode: Push},
	{From: Signup, To: Login, Mode: Push},
	{From: Home, To: Quiz, Mode: Push},
	{From: Quiz, To: AddQuiz, Mode: Push},
}

// Lookup returns the rule for from -> to, if one exists.
func Lookup(from, to ID) (Rule, bool) {
	for _, r := range rules {
		if r.From == from && r.To == to {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns a copy of the transition table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
