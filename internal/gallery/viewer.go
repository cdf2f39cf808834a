package gallery

import "math"

// Zoom limits for the image viewer.
const (
	MinZoom       = 0.5
	MaxZoom       = 3.0
	ZoomStep      = 0.25
	WheelZoomStep = 0.1
)

// Viewer is the modal image viewer. The zero value is closed.
type Viewer struct {
	photos []Item
	item   Item
	open   bool
	zoom   float64
}

// NewViewer returns a closed viewer that steps through photos.
func NewViewer(photos []Item) *Viewer {
	return &Viewer{photos: append([]Item(nil), photos...), zoom: 1}
}

// Open shows it at 100%.
func (v *Viewer) Open(it Item) {
	v.item, v.open, v.zoom = it, true, 1
}

// Close hides the viewer and resets the zoom.
func (v *Viewer) Close() {
	v.open, v.zoom = false, 1
}

// IsOpen reports whether the viewer is showing.
func (v *Viewer) IsOpen() bool { return v.open }

// Current returns the shown item.
func (v *Viewer) Current() (Item, bool) { return v.item, v.open }

// Zoom returns the scale factor.
func (v *Viewer) Zoom() float64 {
	if v.zoom == 0 {
		return 1
	}
	return v.zoom
}

// Percent is the zoom as a rounded percentage.
func (v *Viewer) Percent() int { return int(math.Round(v.Zoom() * 100)) }

func (v *Viewer) ZoomIn()  { v.setZoom(v.Zoom() + ZoomStep) }
func (v *Viewer) ZoomOut() { v.setZoom(v.Zoom() - ZoomStep) }

// Wheel zooms by the finer wheel step: up zooms in.
func (v *Viewer) Wheel(up bool) {
	if !v.open {
		return
	}
	if up {
		v.setZoom(v.Zoom() + WheelZoomStep)
	} else {
		v.setZoom(v.Zoom() - WheelZoomStep)
	}
}

func (v *Viewer) CanZoomIn() bool  { return v.Zoom() < MaxZoom }
func (v *Viewer) CanZoomOut() bool { return v.Zoom() > MinZoom }

func (v *Viewer) setZoom(z float64) {
	z = math.Round(z*100) / 100
	v.zoom = math.Min(math.Max(z, MinZoom), MaxZoom)
}

// Navigable reports whether the current item is part of the photo sequence.
func (v *Viewer) Navigable() bool {
	return v.open && v.indexOf(v.item.ID) >= 0
}

// Next shows the following photo, wrapping at the end, at 100%.
func (v *Viewer) Next() bool { return v.step(1) }

// Prev shows the preceding photo, wrapping at the start, at 100%.
func (v *Viewer) Prev() bool { return v.step(-1) }

func (v *Viewer) step(delta int) bool {
	if !v.open {
		return false
	}
	i := v.indexOf(v.item.ID)
	if i < 0 {
		return false
	}
	n := len(v.photos)
	v.Open(v.photos[((i+delta)%n+n)%n])
	return true
}

func (v *Viewer) indexOf(id int) int {
	for i, p := range v.photos {
		if p.ID == id {
			return i
		}
	}
	return -1
}
