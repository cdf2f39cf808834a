package persist

import (
	"encoding/json"
	"log/slog"

	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/state"
	"github.com/five82/memento/internal/storage"
)

// Mirror keeps the note text and thumbnail positions in step with a Store.
//
// Nothing is written for a key until that key has been read back, so a
// failed or pending read can never clobber saved data. A positions blob that
// reads fine but does not parse counts as read: defaults are used and the
// next save replaces it. Write failures are logged and dropped.
type Mirror struct {
	store   storage.Store
	session *state.Session
	logger  *slog.Logger

	thumb  geometry.Size
	insets geometry.Insets

	positions       Positions
	noteLoaded      bool
	positionsLoaded bool

	bounds     geometry.Bounds
	haveBounds bool
}

// Options configures a Mirror.
type Options struct {
	Store   storage.Store
	Session *state.Session
	Logger  *slog.Logger

	// Thumb is the thumbnail footprint used for bounds.
	Thumb geometry.Size
	// Insets reserve the menu bar, dock and padding around thumbnails.
	Insets geometry.Insets
}

// NewMirror binds a store to a session. It registers a note observer on the
// session but does not read anything until Load.
func NewMirror(opts Options) *Mirror {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Mirror{
		store:     opts.Store,
		session:   opts.Session,
		logger:    logger.With("component", "persist"),
		thumb:     opts.Thumb,
		insets:    opts.Insets,
		positions: Positions{},
	}
	if m.session != nil {
		m.session.OnNoteChange(m.saveNote)
	}
	return m
}

// Load reads the note and positions. The two keys are independent: a failure
// on one leaves the other untouched. Errors are logged, never returned.
func (m *Mirror) Load() {
	m.loadNote()
	m.loadPositions()
}

func (m *Mirror) loadNote() {
	if m.store == nil {
		return
	}
	text, ok, err := m.store.Get(storage.NoteKey)
	if err != nil {
		m.logger.Warn("note read failed", "error", err)
		return
	}
	if ok && m.session != nil {
		m.session.RestoreNoteText(text)
	}
	m.noteLoaded = true
}

func (m *Mirror) loadPositions() {
	if m.store == nil {
		return
	}
	raw, ok, err := m.store.Get(storage.PositionsKey)
	if err != nil {
		m.logger.Warn("positions read failed", "error", err)
		return
	}
	if ok && raw != "" {
		var parsed Positions
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			m.logger.Warn("positions malformed, using defaults", "error", err)
		} else {
			m.positions = parsed
		}
	}
	m.positionsLoaded = true
}

// NoteLoaded reports whether the note has been read back.
func (m *Mirror) NoteLoaded() bool { return m.noteLoaded }

// PositionsLoaded reports whether the positions have been read back.
func (m *Mirror) PositionsLoaded() bool { return m.positionsLoaded }

// Positions returns a copy of the known positions.
func (m *Mirror) Positions() Positions {
	return m.positions.Clone()
}

// Position returns the stored position for a thumbnail.
func (m *Mirror) Position(id int) (geometry.Point, bool) {
	p, ok := m.positions[id]
	return p, ok
}

// SetPosition records a committed thumbnail position and persists the map.
func (m *Mirror) SetPosition(id int, p geometry.Point) {
	if m.positions == nil {
		m.positions = Positions{}
	}
	m.positions[id] = p
	m.SavePositions()
}

// Track records a position in memory without writing it. SavePositions
// commits tracked positions.
func (m *Mirror) Track(id int, p geometry.Point) {
	if m.positions == nil {
		m.positions = Positions{}
	}
	m.positions[id] = p
}

// ResetPositions forgets every position in memory and in the store.
func (m *Mirror) ResetPositions() {
	m.positions = Positions{}
	if m.store == nil {
		return
	}
	if err := m.store.Delete(storage.PositionsKey); err != nil {
		m.logger.Warn("positions delete failed", "error", err)
	}
}

// SavePositions writes the position map. An empty map is not written.
func (m *Mirror) SavePositions() {
	if !m.positionsLoaded || m.store == nil || len(m.positions) == 0 {
		return
	}
	data, err := json.Marshal(m.positions)
	if err != nil {
		m.logger.Warn("positions encode failed", "error", err)
		return
	}
	if err := m.store.Set(storage.PositionsKey, string(data)); err != nil {
		m.logger.Warn("positions write failed", "error", err)
	}
}

func (m *Mirror) saveNote(text string) {
	if !m.noteLoaded || m.store == nil {
		return
	}
	if err := m.store.Set(storage.NoteKey, text); err != nil {
		m.logger.Warn("note write failed", "error", err)
	}
}

// Bounds returns the thumbnail bounds for a viewport.
func (m *Mirror) Bounds(viewport geometry.Size) geometry.Bounds {
	return geometry.ThumbnailBounds(viewport, m.thumb, m.insets)
}

// Rescale moves every stored position from the previous thumbnail bounds to
// the bounds for viewport, keeping its relative placement, and persists the
// result when anything moved. The first call has no previous bounds and only
// clamps. Before positions have been loaded the in-memory map is still
// rescaled but nothing is written.
func (m *Mirror) Rescale(viewport geometry.Size) Positions {
	next := m.Bounds(viewport)
	from := next
	if m.haveBounds {
		from = m.bounds
	}
	m.bounds, m.haveBounds = next, true

	changed := false
	for id, p := range m.positions {
		q := from.Rescale(p, next)
		if q != p {
			m.positions[id] = q
			changed = true
		}
	}
	if changed {
		m.SavePositions()
	}
	return m.Positions()
}
