package ui

import "time"

// Fixed rows reserved by the desktop chrome.
const (
	// MenuBarHeight is the top row holding the clock, lock and volume.
	MenuBarHeight = 1

	// DockHeight is the bordered launcher row at the bottom.
	DockHeight = 3
)

// Floating widget inner widths. Heights follow the rendered content.
const (
	musicWidth    = 28
	notesWidth    = 30
	notesHeight   = 6
	calendarWidth = 23
	plansWidth    = 44
	letterWidth   = 64
	volumeWidth   = 24
)

// WidgetMargin is the fraction of the viewport floating widgets keep clear of.
const WidgetMargin = 0.05

// Timing constants.
const (
	// ClockInterval refreshes the menu bar and lock screen clock.
	ClockInterval = 30 * time.Second

	// IdleInterval is how often the inactivity timer is checked.
	IdleInterval = time.Second

	// LetterOpenDelay lets the letter thumbnail animate before navigating.
	LetterOpenDelay = 600 * time.Millisecond

	// EnvelopeOpenDelay is the envelope animation on the letter view.
	EnvelopeOpenDelay = 650 * time.Millisecond

	// DefaultInactivity locks the desktop after this long without input.
	DefaultInactivity = 3 * time.Minute
)
