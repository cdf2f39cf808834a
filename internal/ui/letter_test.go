package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memento/internal/config"
	"github.com/five82/memento/internal/route"
	"github.com/five82/memento/internal/state"
)

func TestLetterViewFlow(t *testing.T) {
	s := state.NewSession()
	v := newLetterView()

	v.flip()
	assert.False(t, v.flipped, "the card cannot turn before the envelope opens")

	require.True(t, v.open())
	assert.False(t, v.open(), "already opening")
	v.finishOpening()
	require.True(t, v.opened)

	v.answerYes(s)
	assert.False(t, s.CanAccessPlans(), "the question is on the back")

	v.flip()
	v.answerYes(s)
	assert.True(t, v.saidYes)
	assert.True(t, s.CanAccessPlans())

	v.reset()
	assert.False(t, v.opened)
	assert.False(t, v.saidYes)
	assert.True(t, s.CanAccessPlans(), "access outlives the letter view")
}

func TestLetterViewNoOffers(t *testing.T) {
	v := newLetterView()
	v.open()
	v.finishOpening()
	v.flip()

	v.answerNo()
	require.True(t, v.saidNo)
	assert.Equal(t, -1, v.offer)

	v.pickOffer(1)
	assert.Equal(t, 1, v.offer)
	v.pickOffer(2)
	assert.Equal(t, 2, v.offer)
	v.pickOffer(2)
	assert.Equal(t, -1, v.offer)

	v.pickOffer(0)
	v.thinkAgain()
	assert.False(t, v.saidNo)
	assert.Equal(t, -1, v.offer)
	assert.True(t, v.flipped, "back on the question")
}

func TestLetterKeys(t *testing.T) {
	cfg := config.Config{Letter: config.Letter{
		Front:    "hi",
		Text:     "a long letter",
		Question: "will you?",
		Yes:      "yes",
		No:       "no",
		Offers:   []string{"a", "b", "c"},
	}}
	m := newTestModel(t, Options{Start: route.Letter, Config: cfg})

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.letter.opening)

	m = send(t, m, envelopeOpenMsg{}, keyMsg("enter"))
	require.True(t, m.letter.flipped)

	m = send(t, m, keyMsg("N"), keyMsg("2"))
	assert.Equal(t, 1, m.letter.offer)

	m = send(t, m, keyMsg("b"), keyMsg("y"))
	assert.True(t, m.session.CanAccessPlans())

	m = send(t, m, keyMsg("esc"))
	assert.Equal(t, route.Desktop, m.Route())
}

func TestLetterResetsOnReturn(t *testing.T) {
	m := newTestModel(t, Options{Start: route.Letter})
	m = send(t, m, keyMsg("enter"), envelopeOpenMsg{})
	require.True(t, m.letter.opened)

	m = send(t, m, keyMsg("esc"))
	m.nav.Navigate(route.Letter)
	m = send(t, m, clockMsg{})
	assert.Equal(t, route.Letter, m.Route())
	assert.False(t, m.letter.opened)
}

func TestLetterEnvelopeClick(t *testing.T) {
	m := newTestModel(t, Options{Start: route.Letter})
	pn := m.letterPanel()
	r := m.letterRect(pn)
	x, y := r.Origin.Cell()

	// Title row, blank row, then the envelope.
	m = send(t, m, press(x+windowPadX+10, y+windowPadY+3))
	assert.True(t, m.letter.opening)
}

func TestDockLetterLeavesLetterRoute(t *testing.T) {
	m := newTestModel(t, Options{Start: route.Letter})
	m = send(t, m, keyMsg("l"))
	assert.Equal(t, route.Desktop, m.Route())
	assert.False(t, m.session.Visible(state.Letters))
}
