package drag

import "github.com/five82/memento/internal/geometry"

// Tracker routes viewport-wide pointer motion and release events to the one
// behavior currently being dragged. Nothing is routed while no behavior is
// captured, and a detached behavior never receives another event.
type Tracker struct {
	active *Behavior
}

// Capture registers b for global pointer events. Any behavior captured
// earlier is released first.
func (t *Tracker) Capture(b *Behavior) {
	if t.active != nil && t.active != b {
		t.active.End()
	}
	t.active = b
}

// Active returns the captured behavior, or nil.
func (t *Tracker) Active() *Behavior {
	return t.active
}

// Motion forwards a pointer move to the captured behavior.
func (t *Tracker) Motion(pointer geometry.Point, viewport geometry.Size) bool {
	if t.active == nil {
		return false
	}
	return t.active.Move(pointer, viewport)
}

// Release ends the drag regardless of where the pointer is and unregisters
// the behavior. It returns the behavior that was dragging, if any.
func (t *Tracker) Release() *Behavior {
	b := t.active
	if b != nil {
		b.End()
	}
	t.active = nil
	return b
}

// Detach unregisters b if it is captured. Widgets call it on teardown so a
// closed widget cannot keep listening.
func (t *Tracker) Detach(b *Behavior) {
	if b == nil || t.active != b {
		return
	}
	b.End()
	t.active = nil
}
