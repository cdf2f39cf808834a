// Package geometry computes the legal placement of draggable desktop widgets.
//
// All coordinates are float64 terminal cells measured from the top-left of the
// viewport. The same functions work in pixels; only the insets differ.
package geometry

import "math"

// Point is a position in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cell rounds p to the nearest terminal cell.
func (p Point) Cell() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Size is a width/height pair.
type Size struct {
	W float64
	H float64
}

// SizeOf builds a Size from integer cell counts.
func SizeOf(w, h int) Size {
	return Size{W: float64(w), H: float64(h)}
}

// Rect is an axis-aligned box.
type Rect struct {
	Origin Point
	Size   Size
}

// RectOf builds a Rect from integer cell values.
func RectOf(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: float64(x), Y: float64(y)}, Size: SizeOf(w, h)}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.W &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.H
}

// Bounds is the closed range of legal top-left positions for a widget.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp moves p into b.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clampFloat(sanitize(p.X), b.MinX, b.MaxX),
		Y: clampFloat(sanitize(p.Y), b.MinY, b.MaxY),
	}
}

// Contains reports whether p is a legal position.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Center is the midpoint of the range.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Rescale maps p from its placement within b to the same relative placement
// within to. An axis whose source range is empty is only clamped.
func (b Bounds) Rescale(p Point, to Bounds) Point {
	out := p
	if spanX := b.MaxX - b.MinX; spanX > 0 {
		out.X = to.MinX + (p.X-b.MinX)/spanX*(to.MaxX-to.MinX)
	}
	if spanY := b.MaxY - b.MinY; spanY > 0 {
		out.Y = to.MinY + (p.Y-b.MinY)/spanY*(to.MaxY-to.MinY)
	}
	return to.Clamp(out)
}

// WidgetBounds returns the legal top-left range for a widget of the given size
// when a fraction margin of the viewport is reserved on every edge.
func WidgetBounds(viewport, widget Size, margin float64) Bounds {
	vw, vh := nonNegative(viewport.W), nonNegative(viewport.H)
	w, h := nonNegative(widget.W), nonNegative(widget.H)
	m := clampFloat(sanitize(margin), 0, 0.5)

	minX, maxX := vw*m, vw*(1-m)-w
	minY, maxY := vh*m, vh*(1-m)-h
	if maxX < minX {
		minX, maxX = widen(minX, maxX, w)
	}
	if maxY < minY {
		minY, maxY = widen(minY, maxY, h)
	}
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// Insets are the fixed reservations thumbnails keep clear of on top of the
// margin ratio.
type Insets struct {
	Margin       float64
	MenuBar      float64
	Dock         float64
	PaddingMin   float64
	PaddingMax   float64
	PaddingRatio float64
}

// DefaultInsets are tuned for a terminal: one menu row and a three row dock.
func DefaultInsets() Insets {
	return Insets{
		Margin:       0.05,
		MenuBar:      1,
		Dock:         3,
		PaddingMin:   1,
		PaddingMax:   2,
		PaddingRatio: 0.02,
	}
}

// PixelInsets are the browser pixel reservations the desktop layout was designed with.
func PixelInsets() Insets {
	return Insets{
		Margin:       0.05,
		MenuBar:      40,
		Dock:         100,
		PaddingMin:   20,
		PaddingMax:   40,
		PaddingRatio: 0.02,
	}
}

// Padding is the responsive inner padding for a viewport width.
func (in Insets) Padding(viewportWidth float64) float64 {
	return clampFloat(nonNegative(viewportWidth)*in.PaddingRatio, in.PaddingMin, in.PaddingMax)
}

// ThumbnailBounds returns the legal top-left range for a desktop thumbnail.
// The range is always widened by one thumbnail extent when the inner box is
// too small, matching how the desktop treated cramped viewports.
func ThumbnailBounds(viewport, thumb Size, in Insets) Bounds {
	vw, vh := nonNegative(viewport.W), nonNegative(viewport.H)
	w, h := nonNegative(thumb.W), nonNegative(thumb.H)
	m := clampFloat(sanitize(in.Margin), 0, 0.5)
	pad := in.Padding(vw)

	minX := math.Max(vw*m+pad, pad)
	maxX := math.Min(vw*(1-m)-w-pad, vw-w-pad)
	minY := math.Max(vh*m+in.MenuBar+pad, in.MenuBar+pad)
	maxY := math.Min(vh*(1-m)-h-in.Dock-pad, vh-h-in.Dock-pad)

	return Bounds{
		MinX: math.Min(minX, maxX-w),
		MaxX: math.Max(maxX, minX+w),
		MinY: math.Min(minY, maxY-h),
		MaxY: math.Max(maxY, minY+h),
	}
}

func widen(lo, hi, extent float64) (float64, float64) {
	return math.Min(lo, hi-extent), math.Max(hi, lo+extent)
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func nonNegative(v float64) float64 {
	v = sanitize(v)
	if v < 0 {
		return 0
	}
	return v
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64 / 4
	}
	if math.IsInf(v, -1) {
		return -math.MaxFloat64 / 4
	}
	return v
}
