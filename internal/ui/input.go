package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memento/internal/lock"
	"github.com/five82/memento/internal/route"
	"github.com/five82/memento/internal/state"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Help overlay swallows the next key.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The sticky note editor takes every key while it has focus.
	if m.notes.area.Focused() {
		if key.Matches(msg, m.keys.Escape) {
			m.notes.area.Blur()
			return m, nil
		}
		return m, m.updateNotes(msg)
	}

	if m.viewer.IsOpen() {
		return m, m.handleViewerKey(msg)
	}

	if key.Matches(msg, m.keys.Escape) && m.plansVisible() {
		m.session.SetVisible(state.Plans, false)
		return m, nil
	}

	if m.menu.volumeOpen {
		switch msg.String() {
		case "left":
			m.setVolume(m.music.Volume() - volumeStep)
			return m, nil
		case "right":
			m.setVolume(m.music.Volume() + volumeStep)
			return m, nil
		case "esc":
			m.menu.volumeOpen = false
			return m, nil
		}
	}

	if key.Matches(msg, m.keys.Escape) {
		if _, open := m.cal.Note(); open {
			m.cal.CloseNote()
			return m, nil
		}
	}

	if m.nav.current == route.Lock {
		if out := m.gate.HandleKey(msg.String()); out != lock.Ignored || m.gate.Active() {
			if out == lock.Rejected {
				m.logger.Info("wrong pin", "attempts", m.gate.Attempts())
			}
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Lock):
		m.nav.Navigate(route.Lock)
		return m, nil
	}

	if m.nav.current == route.Letter {
		if cmd, ok := m.handleLetterKey(msg); ok {
			return m, cmd
		}
	}

	if m.nav.current != route.Lock {
		if id, ok := m.dockKey(msg); ok {
			m.dockToggle(id)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.VolumeUp):
		m.setVolume(m.music.Volume() + volumeStep)
		return m, nil
	case key.Matches(msg, m.keys.VolumeDown):
		m.setVolume(m.music.Volume() - volumeStep)
		return m, nil
	}

	if m.session.Visible(state.Music) {
		switch {
		case key.Matches(msg, m.keys.PlayPause):
			return m, m.startCmd(m.music.Toggle())
		case key.Matches(msg, m.keys.NextTrack):
			return m, m.startCmd(m.music.Next())
		case key.Matches(msg, m.keys.PrevTrack):
			return m, m.startCmd(m.music.Prev())
		}
	}

	if m.session.Visible(state.Calendar) {
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.cal.PrevMonth()
			return m, nil
		case key.Matches(msg, m.keys.NextMonth):
			m.cal.NextMonth()
			return m, nil
		}
	}

	if m.nav.current == route.Desktop && key.Matches(msg, m.keys.ResetLayout) {
		m.resetThumbnails()
		m.logger.Info("thumbnail layout reset")
	}
	return m, nil
}

func (m Model) dockKey(msg tea.KeyMsg) (state.WidgetID, bool) {
	switch {
	case key.Matches(msg, m.keys.ToggleNotes):
		return state.Notes, true
	case key.Matches(msg, m.keys.TogglePhotos):
		return state.Photos, true
	case key.Matches(msg, m.keys.ToggleLetters):
		return state.Letters, true
	case key.Matches(msg, m.keys.ToggleMusic):
		return state.Music, true
	case key.Matches(msg, m.keys.ToggleCalendar):
		return state.Calendar, true
	case key.Matches(msg, m.keys.TogglePlans) && m.session.CanAccessPlans():
		return state.Plans, true
	}
	return 0, false
}

// handleViewerKey drives the open image viewer. Keys it does not use are
// dropped so nothing behind the modal reacts.
func (m Model) handleViewerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.viewer.Close()
	case key.Matches(msg, m.keys.PrevPhoto):
		return m.stepViewer(-1)
	case key.Matches(msg, m.keys.NextPhoto):
		return m.stepViewer(1)
	case key.Matches(msg, m.keys.ZoomIn):
		m.viewer.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.viewer.ZoomOut()
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	return nil
}
