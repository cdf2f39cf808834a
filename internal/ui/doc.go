// Package ui is the memento terminal front end, built on Bubble Tea.
//
// # Routes
//
// The screen shows one of three routes at a time: the lock screen, the
// desktop and the letter. The lock gate, the menu bar and the letter
// thumbnail all navigate through the model's navigator; enter effects (for
// example cancelling a half-typed PIN) run once at the end of the update
// that navigated.
//
// # Layers
//
// renderScreen stacks everything on a lipgloss canvas, bottom to top:
//
//   - background
//   - route content: lock panel, desktop thumbnails or the letter card
//   - floating widgets (music, sticky note, calendar) in raise order
//   - menu bar and dock, hidden on the lock screen
//   - volume popup, plans window, then the photo viewer and its backdrop
//
// Each layer is built from a panel, which pairs the rendered string with the
// pressable regions inside it. Mouse presses walk the same stack top down,
// so what is drawn on top is what gets the click.
//
// # Dragging
//
// Thumbnails and floating widgets move with drag.Behavior. One
// drag.Tracker holds whichever behavior is captured and gets every motion
// and release event. A release that did not move counts as a click.
// Thumbnail positions are committed to the persist.Mirror on release.
//
// # Shared State
//
// Widget visibility, the sticky note and plans access live in the
// state.Session passed in Options, so they survive route changes. Playback
// starts run as commands off the update loop and report back with the
// request token, which lets the playback machine drop stale results.
package ui
