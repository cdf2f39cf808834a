package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Lock       key.Binding

	// Dock
	TogglePlans    key.Binding
	ToggleNotes    key.Binding
	TogglePhotos   key.Binding
	ToggleLetters  key.Binding
	ToggleMusic    key.Binding
	ToggleCalendar key.Binding
	ResetLayout    key.Binding

	// Music
	PlayPause  key.Binding
	NextTrack  key.Binding
	PrevTrack  key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding

	// Calendar
	PrevMonth key.Binding
	NextMonth key.Binding

	// Viewer
	PrevPhoto key.Binding
	NextPhoto key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding

	// Letter
	Confirm    key.Binding
	Yes        key.Binding
	No         key.Binding
	Offer      key.Binding
	ThinkAgain key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close window"),
		),
		Lock: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Lock"),
		),

		// Dock
		TogglePlans: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Plans"),
		),
		ToggleNotes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Sticky note"),
		),
		TogglePhotos: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Photos"),
		),
		ToggleLetters: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Letters"),
		),
		ToggleMusic: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Music"),
		),
		ToggleCalendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Calendar"),
		),
		ResetLayout: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset thumbnail layout"),
		),

		// Music
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play/pause"),
		),
		NextTrack: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "Next track"),
		),
		PrevTrack: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "Previous track"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Volume down"),
		),

		// Calendar
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next month"),
		),

		// Viewer
		PrevPhoto: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left", "Previous photo"),
		),
		NextPhoto: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "Next photo"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Zoom out"),
		),

		// Letter
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open / flip"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Answer yes"),
		),
		No: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Answer no"),
		),
		Offer: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "Pick an offer"),
		),
		ThinkAgain: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Think about it again"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleNotes, k.TogglePhotos, k.ToggleLetters, k.ToggleMusic, k.ToggleCalendar, k.TogglePlans, k.ResetLayout},
		{k.PlayPause, k.NextTrack, k.PrevTrack, k.VolumeUp, k.VolumeDown},
		{k.PrevMonth, k.NextMonth},
		{k.PrevPhoto, k.NextPhoto, k.ZoomIn, k.ZoomOut},
		{k.Confirm, k.Yes, k.No, k.Offer, k.ThinkAgain},
		{k.Lock, k.CycleTheme, k.Escape, k.Help, k.Quit},
	}
}
