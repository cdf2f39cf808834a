package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/route"
	"github.com/five82/memento/internal/state"
)

// volumeStep is how far the volume keys move the slider.
const volumeStep = 5

// menuBar is the state of the top bar.
type menuBar struct {
	clock      time.Time
	volumeOpen bool
}

var menuLabels = []string{"Finder", "File", "Edit", "View", "Go", "Window", "Help"}

// menuPanel renders the top bar and returns the column where the volume
// popup hangs from.
func (m Model) menuPanel() (panel, int) {
	st := m.theme.Styles()
	fill := newBarFill(m.theme.Surface)

	left := fill.Render(" ♥ ", st.HeartText) + fill.Render(menuLabels[0], st.Text.Bold(true))
	for _, label := range menuLabels[1:] {
		left += fill.Spaces(2) + fill.Render(label, st.MutedText)
	}

	vol := fmt.Sprintf(" Vol %d%% ", m.music.Volume())
	volLabel := fill.Render(vol, st.Text)
	if m.menu.volumeOpen {
		volLabel = st.Selected.Render(vol)
	}
	lockLabel := fill.Render(" Lock ", st.Text)
	wifi := fill.Render("Wi-Fi", st.MutedText)
	battery := fill.Render("100%", st.MutedText)
	clock := fill.Render(m.menu.clock.Format("Mon Jan 2  3:04 PM")+" ", st.Text)

	right := []string{lockLabel, wifi, volLabel, battery, clock}
	rightW := 2 * (len(right) - 1)
	for _, r := range right {
		rightW += lipgloss.Width(r)
	}

	gap := m.width - lipgloss.Width(left) - rightW
	if gap < 1 {
		// Drop the application menus before the status items.
		left = fill.Render(" ♥ ", st.HeartText)
		gap = max(m.width-lipgloss.Width(left)-rightW, 1)
	}

	var l lines
	l.text(left).text(fill.Spaces(gap))
	l.button(lockLabel, func(m Model) tea.Cmd {
		m.nav.Navigate(route.Lock)
		return nil
	})
	l.text(fill.Spaces(2)).text(wifi).text(fill.Spaces(2))
	volX := l.x
	l.button(volLabel, func(m Model) tea.Cmd {
		m.menu.volumeOpen = !m.menu.volumeOpen
		return nil
	})
	l.text(fill.Spaces(2)).text(battery).text(fill.Spaces(2)).text(clock)
	p := l.panel()
	p.view = fill.Line(p.view, m.width)
	return p, volX
}

// volumePanel is the slider that drops from the menu bar.
func (m Model) volumePanel() panel {
	st := m.windowStyles()
	var l lines
	titleRow(&l, st, "VOLUME", volumeWidth, func(m Model) tea.Cmd {
		m.menu.volumeOpen = false
		return nil
	})

	cells := volumeWidth - 5
	filled := m.music.Volume() * (cells - 1) / 100
	l.text(st.FaintText.Render("["))
	for i := 0; i < cells; i++ {
		glyph := st.FaintText.Render("─")
		switch {
		case i == filled:
			glyph = st.AccentText.Render("●")
		case i < filled:
			glyph = st.AccentText.Render("━")
		}
		level := i * 100 / (cells - 1)
		l.button(glyph, func(m Model) tea.Cmd {
			m.setVolume(level)
			return nil
		})
	}
	l.text(st.FaintText.Render("]"))
	l.text(st.Text.Render(fmt.Sprintf("%3d", m.music.Volume())))
	l.newline()
	return window(m.theme.Styles().Window, volumeWidth, l.panel())
}

func (m Model) volumeRect(p panel) geometry.Rect {
	_, volX := m.menuPanel()
	size := p.size()
	x := min(volX, m.width-int(size.W))
	return geometry.Rect{Origin: geometry.Point{X: float64(max(x, 0)), Y: MenuBarHeight}, Size: size}
}

func (m Model) setVolume(v int) {
	m.music.SetVolume(v)
	m.savePrefs()
}

// Dock

type dockItem struct {
	label string
	id    state.WidgetID
}

func (m Model) dockItems() []dockItem {
	var items []dockItem
	if m.session.CanAccessPlans() {
		items = append(items, dockItem{"Plan", state.Plans})
	}
	return append(items,
		dockItem{"Notes", state.Notes},
		dockItem{"Photos", state.Photos},
		dockItem{"Letter", state.Letters},
		dockItem{"Music", state.Music},
		dockItem{"Calendar", state.Calendar},
	)
}

func (m Model) dockPanel() panel {
	st := m.windowStyles()
	var l lines
	for i, it := range m.dockItems() {
		if i > 0 {
			l.text(st.FaintText.Render(" │ "))
		}
		style := st.Text
		if m.session.Visible(it.id) {
			style = st.Selected
		}
		id := it.id
		l.button(style.Render(" "+it.label+" "), func(m Model) tea.Cmd {
			m.dockToggle(id)
			return nil
		})
	}
	content := l.panel()
	return window(m.theme.Styles().Window.Padding(0, 1), lipgloss.Width(content.view), content)
}

func (m Model) dockRect(p panel) geometry.Rect {
	size := p.size()
	x := (m.width - int(size.W)) / 2
	y := m.height - int(size.H)
	return geometry.Rect{Origin: geometry.Point{X: float64(max(x, 0)), Y: float64(max(y, 0))}, Size: size}
}

// dockToggle flips one widget. On the letter route the Letter item leads
// back to the desktop instead.
func (m Model) dockToggle(id state.WidgetID) {
	switch {
	case id == state.Letters && m.nav.current == route.Letter:
		m.nav.Navigate(route.Desktop)
	case id == state.Plans && !m.session.CanAccessPlans():
		return
	default:
		m.session.Toggle(id)
	}
}
