package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/route"
	"github.com/five82/memento/internal/state"
)

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	p := geometry.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.pointer.tracker.Motion(p, m.viewport())
		return m, nil
	case tea.MouseActionRelease:
		return m, m.release()
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m, m.wheel(msg)
	case tea.MouseButtonLeft:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.notes.area.Blur()
		return m, m.press(p)
	}
	return m, nil
}

// release ends a press. A press that did not move counts as a click.
func (m Model) release() tea.Cmd {
	kind := m.pointer.kind
	b := m.pointer.tracker.Release()
	m.pointer.kind = pressNone

	switch kind {
	case pressThumb:
		id := m.pointer.thumb
		if b == nil {
			// The letter is never captured.
			return m.clickThumbnail(id)
		}
		if b.ConsumeClick() {
			return m.clickThumbnail(id)
		}
		if m.mirror != nil {
			m.mirror.SavePositions()
		}
	case pressWidget:
		if b != nil && b.ConsumeClick() && m.pointer.widget == state.Calendar {
			m.cal.CloseNote()
		}
	}
	return nil
}

func (m Model) wheel(msg tea.MouseMsg) tea.Cmd {
	up := msg.Button == tea.MouseButtonWheelUp
	switch {
	case m.viewer.IsOpen():
		m.viewer.Wheel(up)
	case m.nav.current == route.Letter && m.letter.flipped:
		var cmd tea.Cmd
		m.letter.body, cmd = m.letter.body.Update(msg)
		return cmd
	}
	return nil
}

// press routes a left press to the topmost layer under the pointer.
func (m Model) press(p geometry.Point) tea.Cmd {
	if m.viewer.IsOpen() {
		pn := m.viewerPanel()
		r := m.viewerRect(pn)
		if !r.Contains(p) {
			m.viewer.Close()
			return nil
		}
		if reg, ok := pn.at(p.Sub(r.Origin)); ok {
			return reg.act(m)
		}
		return nil
	}

	if m.plansVisible() {
		pn := m.plansPanel()
		r := m.plansRect(pn)
		if !r.Contains(p) {
			m.session.SetVisible(state.Plans, false)
			return nil
		}
		if reg, ok := pn.at(p.Sub(r.Origin)); ok {
			return reg.act(m)
		}
		return nil
	}

	if m.menu.volumeOpen {
		pn := m.volumePanel()
		r := m.volumeRect(pn)
		if r.Contains(p) {
			if reg, ok := pn.at(p.Sub(r.Origin)); ok {
				return reg.act(m)
			}
			return nil
		}
		m.menu.volumeOpen = false
		// A press on the volume label would only reopen the popup.
		if _, volX := m.menuPanel(); p.Y < MenuBarHeight {
			if reg, ok := m.menuAt(p); ok && int(reg.rect.Origin.X) == volX {
				return nil
			}
		}
	}

	if _, open := m.cal.Note(); open && m.session.Visible(state.Calendar) {
		pn := m.calendarPanel()
		if !m.widgetRect(state.Calendar, pn).Contains(p) {
			m.cal.CloseNote()
		}
	}

	if m.nav.current != route.Lock {
		if p.Y < MenuBarHeight {
			if reg, ok := m.menuAt(p); ok {
				return reg.act(m)
			}
			return nil
		}
		pn := m.dockPanel()
		r := m.dockRect(pn)
		if r.Contains(p) {
			if reg, ok := pn.at(p.Sub(r.Origin)); ok {
				return reg.act(m)
			}
			return nil
		}
	}

	widgets := m.visibleWidgets()
	for i := len(widgets) - 1; i >= 0; i-- {
		id := widgets[i]
		if m.widgetRect(id, m.widgetPanel(id)).Contains(p) {
			return m.pressWidget(id, p)
		}
	}

	switch m.nav.current {
	case route.Lock:
		return m.pressLock(p)
	case route.Desktop:
		if slot, r, ok := m.thumbnailAt(p); ok {
			m.pressThumbnail(slot, r, p)
		}
	case route.Letter:
		pn := m.letterPanel()
		r := m.letterRect(pn)
		if reg, ok := pn.at(p.Sub(r.Origin)); ok && r.Contains(p) {
			return reg.act(m)
		}
	}
	return nil
}

func (m Model) menuAt(p geometry.Point) (region, bool) {
	pn, _ := m.menuPanel()
	return pn.at(p)
}
