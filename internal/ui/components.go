package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memento/internal/geometry"
)

// Cells between a window's outer edge and its content: border plus padding.
const (
	windowPadX = 2
	windowPadY = 1
)

// action runs when a region is pressed.
type action func(m Model) tea.Cmd

// region is a pressable area in panel-local cells.
type region struct {
	rect geometry.Rect
	act  action
}

// panel is a rendered block and the pressable areas inside it.
type panel struct {
	view    string
	regions []region
}

func (p panel) size() geometry.Size {
	return geometry.SizeOf(lipgloss.Width(p.view), lipgloss.Height(p.view))
}

// at returns the topmost region containing the local point.
func (p panel) at(local geometry.Point) (region, bool) {
	for i := len(p.regions) - 1; i >= 0; i-- {
		if p.regions[i].rect.Contains(local) {
			return p.regions[i], true
		}
	}
	return region{}, false
}

// lines assembles a block row by row and records pressable spans.
type lines struct {
	rows    []string
	cur     strings.Builder
	x       int
	regions []region
}

func (l *lines) text(s string) *lines {
	l.cur.WriteString(s)
	l.x += lipgloss.Width(s)
	return l
}

func (l *lines) button(s string, act action) *lines {
	w := lipgloss.Width(s)
	if act != nil {
		l.regions = append(l.regions, region{rect: geometry.RectOf(l.x, len(l.rows), w, 1), act: act})
	}
	return l.text(s)
}

// area marks a block of rows starting at the current row.
func (l *lines) area(w, h int, act action) {
	l.regions = append(l.regions, region{rect: geometry.RectOf(0, len(l.rows), w, h), act: act})
}

func (l *lines) newline() *lines {
	l.rows = append(l.rows, l.cur.String())
	l.cur.Reset()
	l.x = 0
	return l
}

// block appends every line of s as its own row.
func (l *lines) block(s string) *lines {
	for _, row := range strings.Split(s, "\n") {
		l.text(row).newline()
	}
	return l
}

func (l *lines) panel() panel {
	if l.cur.Len() > 0 {
		l.newline()
	}
	return panel{view: strings.Join(l.rows, "\n"), regions: l.regions}
}

// window wraps content in a bordered box of the given inner width and shifts
// its regions to match.
func window(style lipgloss.Style, inner int, content panel) panel {
	out := panel{view: style.Width(inner + 2).Render(content.view)}
	for _, r := range content.regions {
		r.rect.Origin = r.rect.Origin.Add(geometry.Point{X: windowPadX, Y: windowPadY})
		out.regions = append(out.regions, r)
	}
	return out
}

// titleRow renders a window heading, with a close glyph on the right when
// closeAct is set.
func titleRow(l *lines, st Styles, title string, inner int, closeAct action) {
	l.text(st.Header.Render(title))
	if closeAct == nil {
		l.newline()
		return
	}
	gap := inner - lipgloss.Width(title) - 1
	if gap < 1 {
		gap = 1
	}
	l.text(strings.Repeat(" ", gap))
	l.button(st.MutedText.Render("×"), closeAct)
	l.newline()
}

// pad right-fills s with spaces to width w.
func pad(s string, w int) string {
	if d := w - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// center pads s on both sides to width w.
func center(s string, w int) string {
	d := w - lipgloss.Width(s)
	if d <= 0 {
		return s
	}
	return strings.Repeat(" ", d/2) + s + strings.Repeat(" ", d-d/2)
}

// truncate shortens a string to the given limit, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// centered returns the top-left cell that centers a block of size s in the viewport.
func centered(viewport, s geometry.Size) (int, int) {
	x := int((viewport.W - s.W) / 2)
	y := int((viewport.H - s.H) / 2)
	return max(x, 0), max(y, 0)
}
