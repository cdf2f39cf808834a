package lock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memento/internal/route"
)

type recorder struct{ routes []route.Route }

func (r *recorder) Navigate(to route.Route) { r.routes = append(r.routes, to) }

func typeKeys(g *Gate, keys string) Outcome {
	var last Outcome
	for _, k := range keys {
		last = g.HandleKey(string(k))
	}
	return last
}

func TestWrongThenRightPIN(t *testing.T) {
	nav := &recorder{}
	g := New("030324", "", nav)
	require.Equal(t, Activated, g.HandleKey("enter"))

	assert.Equal(t, Typed, typeKeys(g, "03032"))
	assert.Empty(t, nav.routes, "no navigation before the last digit")
	assert.Equal(t, Rejected, g.HandleKey("5"))
	assert.Equal(t, DefaultErrorMessage, g.Error())
	assert.Zero(t, g.Entered())
	assert.Empty(t, nav.routes)

	assert.Equal(t, Unlocked, typeKeys(g, "030324"))
	assert.Equal(t, []route.Route{route.Desktop}, nav.routes)
	assert.Empty(t, g.Error())
	assert.False(t, g.Active())
	assert.Equal(t, 1, g.Attempts())
}

func TestTypingClearsError(t *testing.T) {
	g := New("1234", "nope", nil)
	g.Activate()
	typeKeys(g, "9999")
	require.Equal(t, "nope", g.Error())

	g.HandleKey("1")
	assert.Empty(t, g.Error())
}

func TestBackspace(t *testing.T) {
	g := New("1234", "", nil)
	g.Activate()
	typeKeys(g, "12")

	assert.Equal(t, Erased, g.HandleKey("backspace"))
	assert.Equal(t, 1, g.Entered())
	assert.Equal(t, Erased, g.HandleKey("delete"))
	assert.Equal(t, Ignored, g.HandleKey("backspace"))
	assert.True(t, g.Active())
}

func TestOtherKeysReset(t *testing.T) {
	for _, k := range []string{"esc", "a", "tab"} {
		g := New("1234", "", nil)
		g.Activate()
		typeKeys(g, "12")

		assert.Equal(t, Reset, g.HandleKey(k), k)
		assert.False(t, g.Active())
		assert.Zero(t, g.Entered())
		assert.Zero(t, g.Attempts(), "reset is not an attempt")
	}
}

func TestInactiveIgnoresDigits(t *testing.T) {
	nav := &recorder{}
	g := New("1", "", nav)

	assert.Equal(t, Ignored, g.HandleKey("1"))
	assert.Equal(t, Ignored, g.Digit('1'))
	assert.Empty(t, nav.routes)
}

func TestActivateTwiceResets(t *testing.T) {
	g := New("1234", "", nil)
	g.Activate()
	typeKeys(g, "123")

	g.Activate()
	assert.False(t, g.Active())
	assert.Zero(t, g.Entered())

	g.Activate()
	assert.True(t, g.Active())
}

func TestDigitRejectsNonDigits(t *testing.T) {
	g := New("12", "", nil)
	g.Activate()
	assert.Equal(t, Ignored, g.Digit('x'))
	assert.Zero(t, g.Entered())
}
