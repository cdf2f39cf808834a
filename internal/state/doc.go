// Package state holds the session state shared by every memento view.
//
// # Overview
//
// memento swaps between a lock screen, a desktop and a letter view. Some UI
// state has to outlive those swaps: which overlay widgets are open, the
// sticky note text, and whether the plans widget has been unlocked. That
// state lives in a single Session created by the app package before the UI
// starts and injected into the root model.
//
// # Core Types
//
// WidgetID:
//   - Closed enumeration of overlay widgets (plans, notes, photos, music,
//     calendar, letters)
//   - Invalid values are ignored by every Session method
//
// Session:
//   - One visibility flag per WidgetID, stored in a fixed array so the set
//     of keys can never grow or shrink
//   - Note text and the plans access flag
//   - Observer lists for note and visibility changes
//
// # Ownership Model
//
// Bubble Tea delivers every message to Update on one goroutine, and every
// Session mutation happens inside Update. The Session therefore carries no
// lock. Commands that run on other goroutines receive copies (for example
// the note text to persist), never the Session itself.
//
// # Change Propagation
//
// Side effects of a change are triggered by the mutating method itself:
//
//	session.SetNoteText(text)
//	→ noteObservers(text)   // persist.Mirror writes sticky-note-text
//
//	session.Toggle(state.Music)
//	→ visibilityObservers(Music, true)
//
// Observers run synchronously and in registration order. RestoreNoteText
// bypasses observers so that loading the note from storage does not write
// it straight back.
package state
