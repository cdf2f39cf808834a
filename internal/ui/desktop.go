package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memento/internal/drag"
	"github.com/five82/memento/internal/gallery"
	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/persist"
	"github.com/five82/memento/internal/state"
)

// desktop holds the thumbnail layer of the desktop route.
type desktop struct {
	catalog *gallery.Catalog
	thumb   geometry.Size
	insets  geometry.Insets
	drags   map[int]*drag.Behavior
	// thumbs records which items have a thumbnail file; nil until probed.
	thumbs map[int]bool

	// opening is the sequence of a pending letter open; 0 when none.
	opening int
	seq     int
}

func newDesktop(catalog *gallery.Catalog, thumb geometry.Size, margin float64) *desktop {
	in := geometry.DefaultInsets()
	in.Margin = margin
	d := &desktop{
		catalog: catalog,
		thumb:   thumb,
		insets:  in,
		drags:   make(map[int]*drag.Behavior),
	}
	for _, it := range catalog.Items() {
		if it.Letter {
			continue
		}
		d.drags[it.ID] = drag.New(drag.ThumbnailBounds(in))
	}
	return d
}

// bind mirrors every thumbnail move into mirror's in-memory map.
func (d *desktop) bind(mirror *persist.Mirror) {
	if mirror == nil {
		return
	}
	for id, b := range d.drags {
		b.OnMove = func(p geometry.Point) { mirror.Track(id, p) }
	}
}

// sync places every thumbnail at its saved position, or back at its anchor.
func (d *desktop) sync(mirror *persist.Mirror) {
	if mirror == nil {
		return
	}
	for id, b := range d.drags {
		if b.Dragging() {
			continue
		}
		if p, ok := mirror.Position(id); ok {
			b.SetPosition(p)
		} else {
			b.ClearPosition()
		}
	}
}

// slots lists the revealed thumbnails bottom to top.
func (d *desktop) slots(s *state.Session) []gallery.Slot {
	var out []gallery.Slot
	if s.Visible(state.Photos) {
		out = append(out, d.catalog.Slots(gallery.Photos)...)
	}
	if s.Visible(state.Letters) {
		out = append(out, d.catalog.Slots(gallery.Letters)...)
	}
	return out
}

func (d *desktop) rect(slot gallery.Slot, viewport geometry.Size) geometry.Rect {
	origin := slot.Anchor.Resolve(viewport, d.thumb)
	if b := d.drags[slot.Item.ID]; b != nil {
		if p, ok := b.Position(); ok {
			origin = p
		}
	}
	x, y := origin.Cell()
	return geometry.Rect{Origin: geometry.Point{X: float64(x), Y: float64(y)}, Size: d.thumb}
}

// thumbnailAt returns the topmost revealed thumbnail under p.
func (m Model) thumbnailAt(p geometry.Point) (gallery.Slot, geometry.Rect, bool) {
	slots := m.desk.slots(m.session)
	for i := len(slots) - 1; i >= 0; i-- {
		r := m.desk.rect(slots[i], m.viewport())
		if r.Contains(p) {
			return slots[i], r, true
		}
	}
	return gallery.Slot{}, geometry.Rect{}, false
}

// pressThumbnail grabs a thumbnail. The letter is never dragged; it only
// waits for the release to count as a click.
func (m Model) pressThumbnail(slot gallery.Slot, r geometry.Rect, p geometry.Point) {
	m.pointer.kind = pressThumb
	m.pointer.thumb = slot.Item.ID
	b := m.desk.drags[slot.Item.ID]
	if b == nil || slot.Item.Letter {
		return
	}
	if b.Begin(p, r, false) {
		m.pointer.tracker.Capture(b)
	}
}

// clickThumbnail opens the letter or shows the item in the viewer.
func (m Model) clickThumbnail(id int) tea.Cmd {
	it, ok := m.catalog.Item(id)
	if !ok {
		return nil
	}
	if it.Letter {
		if m.desk.opening != 0 {
			return nil
		}
		m.desk.seq++
		seq := m.desk.seq
		m.desk.opening = seq
		return tea.Tick(LetterOpenDelay, func(time.Time) tea.Msg {
			return letterOpenMsg{seq: seq}
		})
	}
	m.viewer.Open(it)
	return m.lookupAsset(it)
}

type thumbsMsg map[int]bool

// probeThumbnails looks for every thumbnail file off the update loop.
func (m Model) probeThumbnails() tea.Cmd {
	root := m.cfg.Desktop.Assets
	items := m.catalog.Items()
	return func() tea.Msg {
		return thumbsMsg(gallery.ProbeThumbnails(root, items))
	}
}

// resetThumbnails forgets every saved position.
func (m Model) resetThumbnails() {
	if m.mirror != nil {
		m.mirror.ResetPositions()
	}
	for _, b := range m.desk.drags {
		b.ClearPosition()
	}
}

func (m Model) renderThumbnail(slot gallery.Slot) string {
	st := m.theme.Styles()
	style := st.Thumbnail.
		Width(int(m.desk.thumb.W) - 2).
		Height(int(m.desk.thumb.H) - 2)

	inner := int(m.desk.thumb.W) - 2
	label := truncate(displayName(slot.Item), inner)
	if found, probed := m.desk.thumbs[slot.Item.ID]; probed && !slot.Item.Letter {
		if found {
			label = "▣\n" + label
		} else {
			label = st.FaintText.Render(strings.Repeat("░", max(inner, 0))) + "\n" + label
		}
	}
	if slot.Item.Letter {
		style = style.BorderForeground(lipgloss.Color(m.theme.Heart)).
			Foreground(lipgloss.Color(m.theme.Heart))
		label = "✉\nletter"
		if m.desk.opening != 0 {
			label = "✉\nopening…"
		}
	}
	if b := m.desk.drags[slot.Item.ID]; b != nil && b.Dragging() {
		style = style.BorderForeground(lipgloss.Color(m.theme.BorderFocus))
	}
	return style.Render(label)
}

// displayName is the caption under a thumbnail, e.g. "p1.jpg".
func displayName(it gallery.Item) string {
	if strings.Contains(it.Name, ".") {
		return it.Name
	}
	return it.Name + ".jpg"
}
