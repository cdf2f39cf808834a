package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_AllHidden(t *testing.T) {
	s := NewSession()

	flags := s.Visibility()
	require.Len(t, flags, len(AllWidgets()))
	for _, id := range AllWidgets() {
		v, ok := flags[id]
		assert.True(t, ok, "missing %s", id)
		assert.False(t, v, "%s visible by default", id)
	}
	assert.Empty(t, s.NoteText())
	assert.False(t, s.CanAccessPlans())
}

func TestToggle_TwiceRestoresAndIsolates(t *testing.T) {
	for _, target := range AllWidgets() {
		t.Run(target.String(), func(t *testing.T) {
			s := NewSession()
			s.SetVisible(Music, true)
			s.SetVisible(Letters, true)
			before := s.Visibility()

			first := s.Toggle(target)
			assert.Equal(t, !before[target], first)
			for id, v := range s.Visibility() {
				if id != target {
					assert.Equal(t, before[id], v, "%s changed while toggling %s", id, target)
				}
			}

			s.Toggle(target)
			assert.Equal(t, before, s.Visibility())
		})
	}
}

func TestInvalidWidgetIgnored(t *testing.T) {
	s := NewSession()
	bogus := WidgetID(42)

	assert.False(t, s.Toggle(bogus))
	s.SetVisible(bogus, true)
	assert.False(t, s.Visible(bogus))
	assert.Len(t, s.Visibility(), len(AllWidgets()))
	assert.Equal(t, "widget(42)", bogus.String())
}

func TestVisibilityObservers(t *testing.T) {
	s := NewSession()
	type change struct {
		id WidgetID
		v  bool
	}
	var got []change
	s.OnVisibilityChange(func(id WidgetID, v bool) { got = append(got, change{id, v}) })

	s.Toggle(Notes)
	s.SetVisible(Notes, true) // no change, no event
	s.SetVisible(Notes, false)

	assert.Equal(t, []change{{Notes, true}, {Notes, false}}, got)
}

func TestNoteObservers(t *testing.T) {
	s := NewSession()
	var writes []string
	s.OnNoteChange(func(text string) { writes = append(writes, text) })

	s.SetNoteText("hello")
	s.SetNoteText("hello")
	s.RestoreNoteText("from disk")
	s.SetNoteText("bye")

	assert.Equal(t, []string{"hello", "bye"}, writes)
	assert.Equal(t, "bye", s.NoteText())
}

func TestRevokingPlansAccessHidesPlans(t *testing.T) {
	s := NewSession()
	s.SetCanAccessPlans(true)
	s.SetVisible(Plans, true)
	require.True(t, s.Visible(Plans))

	s.SetCanAccessPlans(false)
	assert.False(t, s.Visible(Plans))
}

func TestParseWidgetID(t *testing.T) {
	id, err := ParseWidgetID(" Calendar ")
	require.NoError(t, err)
	assert.Equal(t, Calendar, id)

	_, err = ParseWidgetID("trash")
	assert.Error(t, err)
}
