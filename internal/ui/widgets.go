package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/memento/internal/drag"
	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/state"
)

// floating holds the draggable windows that stay open across routes.
type floating struct {
	margin float64
	drags  map[state.WidgetID]*drag.Behavior
	// order is bottom to top.
	order []state.WidgetID
}

func newFloating(margin float64) *floating {
	f := &floating{
		margin: margin,
		drags:  make(map[state.WidgetID]*drag.Behavior),
		order:  []state.WidgetID{state.Calendar, state.Notes, state.Music},
	}
	for _, id := range f.order {
		f.drags[id] = drag.New(drag.MarginBounds(margin))
	}
	return f
}

func (f *floating) behavior(id state.WidgetID) *drag.Behavior {
	return f.drags[id]
}

// raise moves id to the top of the stack.
func (f *floating) raise(id state.WidgetID) {
	if _, ok := f.drags[id]; !ok {
		return
	}
	out := f.order[:0]
	for _, o := range f.order {
		if o != id {
			out = append(out, o)
		}
	}
	f.order = append(out, id)
}

// anchor is where a widget sits until it is first dragged.
func (f *floating) anchor(id state.WidgetID, viewport, size geometry.Size) geometry.Point {
	b := geometry.WidgetBounds(viewport, size, f.margin)
	var p geometry.Point
	switch id {
	case state.Music:
		p = geometry.Point{X: b.MaxX, Y: b.MinY + MenuBarHeight}
	case state.Notes:
		p = geometry.Point{X: b.MinX, Y: b.MinY + MenuBarHeight}
	default:
		p = geometry.Point{X: b.MaxX, Y: b.MaxY - DockHeight}
	}
	return b.Clamp(p)
}

// clamp pulls placed widgets back inside the viewport after a resize.
func (f *floating) clamp(m Model) {
	for id, b := range f.drags {
		b.Clamp(m.viewport(), m.widgetPanel(id).size())
	}
}

// pressKind says what the pointer went down on.
type pressKind int

const (
	pressNone pressKind = iota
	pressThumb
	pressWidget
)

// pointerState tracks one press from down to release.
type pointerState struct {
	tracker drag.Tracker
	kind    pressKind
	thumb   int
	widget  state.WidgetID
}

// reset drops any press in flight, e.g. on navigation.
func (p *pointerState) reset() {
	p.tracker.Release()
	p.kind = pressNone
}

// visibleWidgets lists the open floating widgets bottom to top.
func (m Model) visibleWidgets() []state.WidgetID {
	var out []state.WidgetID
	for _, id := range m.float.order {
		if m.session.Visible(id) {
			out = append(out, id)
		}
	}
	return out
}

func (m Model) widgetPanel(id state.WidgetID) panel {
	switch id {
	case state.Music:
		return m.musicPanel()
	case state.Notes:
		return m.notesPanel()
	case state.Calendar:
		return m.calendarPanel()
	}
	return panel{}
}

func (m Model) widgetOrigin(id state.WidgetID, size geometry.Size) geometry.Point {
	if b := m.float.behavior(id); b != nil {
		if p, ok := b.Position(); ok {
			return p
		}
	}
	return m.float.anchor(id, m.viewport(), size)
}

func (m Model) widgetRect(id state.WidgetID, p panel) geometry.Rect {
	size := p.size()
	x, y := m.widgetOrigin(id, size).Cell()
	return geometry.Rect{Origin: geometry.Point{X: float64(x), Y: float64(y)}, Size: size}
}

// pressWidget runs a control under the pointer or starts dragging the widget.
func (m Model) pressWidget(id state.WidgetID, p geometry.Point) tea.Cmd {
	pn := m.widgetPanel(id)
	r := m.widgetRect(id, pn)
	m.float.raise(id)

	if reg, ok := pn.at(p.Sub(r.Origin)); ok {
		return reg.act(m)
	}

	b := m.float.behavior(id)
	if b.Begin(p, r, false) {
		m.pointer.tracker.Capture(b)
		m.pointer.kind = pressWidget
		m.pointer.widget = id
	}
	return nil
}

func (m Model) windowStyles() Styles {
	return m.theme.Styles().WithBackground(m.theme.Surface)
}

func (m Model) frame(id state.WidgetID) func(inner int, content panel) panel {
	st := m.theme.Styles()
	style := st.Window
	if b := m.float.behavior(id); b != nil && b.Dragging() {
		style = st.FocusWindow
	}
	if id == state.Notes && m.notes.area.Focused() {
		style = st.FocusWindow
	}
	return func(inner int, content panel) panel {
		return window(style, inner, content)
	}
}

// Music

func (m Model) musicPanel() panel {
	st := m.windowStyles()
	var l lines
	titleRow(&l, st, "PLAY THIS LOVEY", musicWidth, nil)
	l.newline()

	disc := st.MutedText.Render("◎")
	if m.music.Playing() {
		disc = st.HeartText.Render("◉")
	}
	title, sub := "no tracks", "add [[tracks]] to config"
	if t, ok := m.music.Track(); ok {
		title = t.Title
		sub = t.Artwork
		if sub == "" {
			sub = fmt.Sprintf("track %d of %d", m.music.Index()+1, m.music.Tracks())
		}
	}
	l.text(" " + disc + "  " + st.Text.Render(truncate(title, musicWidth-5))).newline()
	l.text("    " + st.MutedText.Render(truncate(sub, musicWidth-5))).newline()
	l.newline()

	label := " play "
	if m.music.Playing() || m.music.Pending() {
		label = " pause "
	}
	l.button(st.Button.Render(label), func(m Model) tea.Cmd {
		return m.startCmd(m.music.Toggle())
	})
	if m.music.Tracks() > 1 {
		l.text("   ")
		l.button(st.Button.Render(" ‹ "), func(m Model) tea.Cmd {
			return m.startCmd(m.music.Prev())
		})
		l.text(" ")
		l.button(st.Button.Render(" › "), func(m Model) tea.Cmd {
			return m.startCmd(m.music.Next())
		})
	}
	l.newline()
	return m.frame(state.Music)(musicWidth, l.panel())
}

// Notes

// notesWidget owns the sticky note editor. The text itself lives in the
// session so it survives the widget closing.
type notesWidget struct {
	area textarea.Model
}

func newNotesWidget(text string) *notesWidget {
	ta := textarea.New()
	ta.Placeholder = "Write a sweet note here..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(notesWidth)
	ta.SetHeight(notesHeight)
	ta.SetValue(text)
	ta.Blur()
	return &notesWidget{area: ta}
}

// updateNotes feeds a key to the editor and publishes the new text.
func (m Model) updateNotes(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.notes.area, cmd = m.notes.area.Update(msg)
	m.session.SetNoteText(m.notes.area.Value())
	return cmd
}

func (m Model) notesPanel() panel {
	st := m.windowStyles()
	var l lines
	titleRow(&l, st, "STICKY NOTE", notesWidth, func(m Model) tea.Cmd {
		m.session.SetVisible(state.Notes, false)
		return nil
	})
	l.area(notesWidth, notesHeight, func(m Model) tea.Cmd {
		return m.notes.area.Focus()
	})
	l.block(m.notes.area.View())
	return m.frame(state.Notes)(notesWidth, l.panel())
}

// Calendar

func (m Model) calendarPanel() panel {
	st := m.windowStyles()
	var l lines
	titleRow(&l, st, "CALENDAR", calendarWidth, nil)

	l.button(st.AccentText.Render(" ‹ "), func(m Model) tea.Cmd {
		m.cal.PrevMonth()
		return nil
	})
	l.text(st.Text.Bold(true).Render(center(m.cal.Label(), calendarWidth-6)))
	l.button(st.AccentText.Render(" › "), func(m Model) tea.Cmd {
		m.cal.NextMonth()
		return nil
	})
	l.newline()

	l.text(" ")
	for _, d := range []string{"S", "M", "T", "W", "T", "F", "S"} {
		l.text(st.FaintText.Render(" " + d + " "))
	}
	l.newline()

	for _, week := range m.cal.Weeks() {
		l.text(" ")
		for _, day := range week {
			if day == 0 {
				l.text("   ")
				continue
			}
			cell := fmt.Sprintf("%2d ", day)
			style := st.Text
			if _, special := m.cal.Special(day); special {
				cell = " ❤ "
				style = st.HeartText
			}
			if m.cal.IsToday(day) {
				style = style.Inherit(st.Selected)
			}
			l.button(style.Render(cell), func(m Model) tea.Cmd {
				m.cal.SelectDay(day)
				return nil
			})
		}
		l.newline()
	}

	if note, open := m.cal.Note(); open {
		l.newline()
		body := wordwrap.String(note.Note, calendarWidth)
		rows := 1 + strings.Count(body, "\n") + 1
		l.area(calendarWidth, rows, func(m Model) tea.Cmd {
			m.cal.CloseNote()
			return nil
		})
		l.text(st.HeartText.Render("♥ " + note.Title)).newline()
		l.block(st.Text.Render(body))
	}
	return m.frame(state.Calendar)(calendarWidth, l.panel())
}
