package state

// Session is the UI state shared by every view for the life of the program.
// It is created once by the app package and handed to the views; navigation
// swaps views but never replaces the session.
//
// A Session is owned by the Bubble Tea update loop and is not safe for
// concurrent use.
type Session struct {
	visible        [widgetCount]bool
	canAccessPlans bool
	noteText       string

	noteObservers       []func(string)
	visibilityObservers []func(WidgetID, bool)
}

// NewSession returns a session with every widget hidden and an empty note.
func NewSession() *Session {
	return &Session{}
}

// Visible reports whether the widget is shown. Unknown widgets are never visible.
func (s *Session) Visible(id WidgetID) bool {
	if !id.Valid() {
		return false
	}
	return s.visible[id]
}

// SetVisible shows or hides a widget. Any view may set any flag; the dock
// decides which toggles it offers.
func (s *Session) SetVisible(id WidgetID, visible bool) {
	if !id.Valid() {
		return
	}
	if s.visible[id] == visible {
		return
	}
	s.visible[id] = visible
	for _, fn := range s.visibilityObservers {
		fn(id, visible)
	}
}

// Toggle flips exactly one widget's visibility and returns the new value.
func (s *Session) Toggle(id WidgetID) bool {
	if !id.Valid() {
		return false
	}
	s.SetVisible(id, !s.visible[id])
	return s.visible[id]
}

// Visibility returns a copy of every flag keyed by widget.
func (s *Session) Visibility() map[WidgetID]bool {
	out := make(map[WidgetID]bool, widgetCount)
	for id := WidgetID(0); id < widgetCount; id++ {
		out[id] = s.visible[id]
	}
	return out
}

// NoteText returns the sticky note contents.
func (s *Session) NoteText() string {
	return s.noteText
}

// SetNoteText replaces the sticky note contents and notifies observers when
// the text actually changed.
func (s *Session) SetNoteText(text string) {
	if text == s.noteText {
		return
	}
	s.noteText = text
	for _, fn := range s.noteObservers {
		fn(text)
	}
}

// RestoreNoteText sets the note without notifying observers. It is used when
// the note is read back from storage, which must not echo a write.
func (s *Session) RestoreNoteText(text string) {
	s.noteText = text
}

// CanAccessPlans reports whether the plans widget has been unlocked.
func (s *Session) CanAccessPlans() bool {
	return s.canAccessPlans
}

// SetCanAccessPlans grants or revokes access to the plans widget. Revoking
// access also hides it.
func (s *Session) SetCanAccessPlans(ok bool) {
	s.canAccessPlans = ok
	if !ok {
		s.SetVisible(Plans, false)
	}
}

// OnNoteChange registers fn to run after every note change.
func (s *Session) OnNoteChange(fn func(string)) {
	if fn != nil {
		s.noteObservers = append(s.noteObservers, fn)
	}
}

// OnVisibilityChange registers fn to run after every visibility change.
func (s *Session) OnVisibilityChange(fn func(WidgetID, bool)) {
	if fn != nil {
		s.visibilityObservers = append(s.visibilityObservers, fn)
	}
}
