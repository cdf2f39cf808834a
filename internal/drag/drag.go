// Package drag implements the pointer drag contract shared by every movable
// desktop widget: press to grab, move to follow the pointer inside legal
// bounds, release anywhere to drop.
package drag

import "github.com/five82/memento/internal/geometry"

// State is the phase of a drag interaction.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// BoundsFunc returns the legal top-left range for a widget of the given size.
type BoundsFunc func(viewport, widget geometry.Size) geometry.Bounds

// MarginBounds clamps widgets into the viewport minus a fractional margin.
func MarginBounds(margin float64) BoundsFunc {
	return func(viewport, widget geometry.Size) geometry.Bounds {
		return geometry.WidgetBounds(viewport, widget, margin)
	}
}

// ThumbnailBounds clamps thumbnails clear of the menu bar and dock.
func ThumbnailBounds(in geometry.Insets) BoundsFunc {
	return func(viewport, widget geometry.Size) geometry.Bounds {
		return geometry.ThumbnailBounds(viewport, widget, in)
	}
}

// Behavior is the drag state of one widget instance.
type Behavior struct {
	bounds BoundsFunc

	// OnMove, when set, observes every committed position.
	OnMove func(geometry.Point)

	state    State
	position geometry.Point
	placed   bool
	offset   geometry.Point
	size     geometry.Size
	moved    bool
}

// New returns an idle behavior with no explicit position.
func New(bounds BoundsFunc) *Behavior {
	return &Behavior{bounds: bounds}
}

// State reports the current phase.
func (b *Behavior) State() State {
	return b.state
}

// Dragging reports whether a drag is in progress.
func (b *Behavior) Dragging() bool {
	return b.state == Dragging
}

// Position returns the explicit position. ok is false while the widget still
// sits at its default anchor.
func (b *Behavior) Position() (geometry.Point, bool) {
	return b.position, b.placed
}

// SetPosition places the widget explicitly without a drag, e.g. when a saved
// position is restored.
func (b *Behavior) SetPosition(p geometry.Point) {
	b.position = p
	b.placed = true
}

// ClearPosition returns the widget to its default anchor.
func (b *Behavior) ClearPosition() {
	b.position = geometry.Point{}
	b.placed = false
}

// Begin starts a drag when the pointer goes down on the widget body. box is
// the widget's rendered rectangle. passThrough marks presses on control
// sub-regions, which are left untouched so the control can handle them.
func (b *Behavior) Begin(pointer geometry.Point, box geometry.Rect, passThrough bool) bool {
	if passThrough {
		return false
	}
	start := box.Origin
	if b.placed {
		start = b.position
	}
	b.offset = pointer.Sub(start)
	b.size = box.Size
	b.moved = false
	b.state = Dragging
	return true
}

// Move follows the pointer while dragging and reports whether the position changed.
func (b *Behavior) Move(pointer geometry.Point, viewport geometry.Size) bool {
	if b.state != Dragging {
		return false
	}
	next := pointer.Sub(b.offset)
	if b.bounds != nil {
		next = b.bounds(viewport, b.size).Clamp(next)
	}
	b.moved = true
	changed := !b.placed || next != b.position
	b.position = next
	b.placed = true
	if b.OnMove != nil {
		b.OnMove(next)
	}
	return changed
}

// End drops the widget. Calling End while idle is a no-op.
func (b *Behavior) End() {
	b.state = Idle
	b.offset = geometry.Point{}
}

// ConsumeClick reports whether a click that follows a press should run the
// widget's click handler. A press that moved the widget is not a click; the
// moved marker is reset either way.
func (b *Behavior) ConsumeClick() bool {
	moved := b.moved
	b.moved = false
	return !moved
}

// Clamp pulls an explicit position back inside the bounds for the current
// viewport, e.g. after a resize. Widgets at their default anchor are left alone.
func (b *Behavior) Clamp(viewport, widget geometry.Size) bool {
	if !b.placed || b.bounds == nil {
		return false
	}
	next := b.bounds(viewport, widget).Clamp(b.position)
	if next == b.position {
		return false
	}
	b.position = next
	return true
}
