// Package lock implements the PIN gate in front of the desktop.
package lock

import (
	"strings"

	"github.com/five82/memento/internal/route"
)

// DefaultErrorMessage is shown after a wrong PIN.
const DefaultErrorMessage = "Wrong password. Try again, lovey."

// Outcome describes what a key did to the gate.
type Outcome int

const (
	Ignored Outcome = iota
	Activated
	Typed
	Erased
	Rejected
	Unlocked
	Reset
)

func (o Outcome) String() string {
	switch o {
	case Activated:
		return "activated"
	case Typed:
		return "typed"
	case Erased:
		return "erased"
	case Rejected:
		return "rejected"
	case Unlocked:
		return "unlocked"
	case Reset:
		return "reset"
	default:
		return "ignored"
	}
}

// Gate accumulates PIN digits and navigates to the desktop on a match.
//
// Input is only accepted while the gate is active. The lock screen shows the
// clock while inactive and the keypad while active.
type Gate struct {
	secret   string
	errorMsg string
	nav      route.Navigator

	digits   []byte
	active   bool
	message  string
	attempts int
}

// New returns an inactive gate for secret. An empty errorMsg uses
// DefaultErrorMessage.
func New(secret, errorMsg string, nav route.Navigator) *Gate {
	if strings.TrimSpace(errorMsg) == "" {
		errorMsg = DefaultErrorMessage
	}
	return &Gate{secret: secret, errorMsg: errorMsg, nav: nav}
}

// PINLength is the number of digits that triggers validation.
func (g *Gate) PINLength() int { return len(g.secret) }

// Active reports whether the keypad is showing.
func (g *Gate) Active() bool { return g.active }

// Entered returns how many digits have been typed.
func (g *Gate) Entered() int { return len(g.digits) }

// Error returns the current error message, if any.
func (g *Gate) Error() string { return g.message }

// Attempts counts completed wrong entries.
func (g *Gate) Attempts() int { return g.attempts }

// Activate shows the keypad, or when it is already showing, resets back to
// the clock.
func (g *Gate) Activate() {
	if !g.active {
		g.active = true
		return
	}
	g.Cancel()
}

// Cancel hides the keypad and forgets partial input.
func (g *Gate) Cancel() {
	g.active = false
	g.digits = g.digits[:0]
	g.message = ""
}

// Digit appends r. Validation runs once, when the entry reaches the PIN
// length. Non-digits and input past the PIN length are ignored.
func (g *Gate) Digit(r rune) Outcome {
	if !g.active || r < '0' || r > '9' || len(g.digits) >= len(g.secret) {
		return Ignored
	}
	g.digits = append(g.digits, byte(r))
	g.message = ""
	if len(g.digits) < len(g.secret) {
		return Typed
	}

	entered := string(g.digits)
	g.digits = g.digits[:0]
	if entered != g.secret {
		g.attempts++
		g.message = g.errorMsg
		return Rejected
	}
	g.active = false
	g.message = ""
	if g.nav != nil {
		g.nav.Navigate(route.Desktop)
	}
	return Unlocked
}

// Backspace removes the last digit and clears the error.
func (g *Gate) Backspace() Outcome {
	if !g.active || len(g.digits) == 0 {
		return Ignored
	}
	g.digits = g.digits[:len(g.digits)-1]
	g.message = ""
	return Erased
}

// HandleKey applies a key name as produced by tea.KeyMsg.String.
//
// While inactive only enter and space activate. While active digits type,
// backspace and delete erase, and any other key resets to the clock.
func (g *Gate) HandleKey(k string) Outcome {
	if !g.active {
		switch k {
		case "enter", " ", "space":
			g.Activate()
			return Activated
		}
		return Ignored
	}

	switch k {
	case "backspace", "delete", "ctrl+h":
		return g.Backspace()
	}
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return g.Digit(rune(k[0]))
	}
	g.Cancel()
	return Reset
}
