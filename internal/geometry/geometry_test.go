package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetBounds_Regular(t *testing.T) {
	b := WidgetBounds(Size{W: 1000, H: 800}, Size{W: 200, H: 100}, 0.05)

	assert.InDelta(t, 50, b.MinX, 1e-9)
	assert.InDelta(t, 750, b.MaxX, 1e-9)
	assert.InDelta(t, 40, b.MinY, 1e-9)
	assert.InDelta(t, 660, b.MaxY, 1e-9)
}

func TestWidgetBounds_WidgetLargerThanInnerBox(t *testing.T) {
	b := WidgetBounds(Size{W: 100, H: 50}, Size{W: 300, H: 80}, 0.05)

	require.LessOrEqual(t, b.MinX, b.MaxX)
	require.LessOrEqual(t, b.MinY, b.MaxY)
	p := b.Clamp(Point{X: 1e6, Y: -1e6})
	assert.True(t, b.Contains(p), "clamped point %v outside %v", p, b)
}

func TestBoundsNeverInverted(t *testing.T) {
	viewports := []Size{{0, 0}, {1, 1}, {20, 10}, {80, 24}, {200, 60}, {1920, 1080}, {-5, math.NaN()}}
	widgets := []Size{{0, 0}, {5, 3}, {30, 12}, {120, 120}, {500, 400}, {math.Inf(1), 2}}
	candidates := []Point{{0, 0}, {-100, -100}, {1e9, 1e9}, {40, 12}, {math.NaN(), 3}}

	for _, vp := range viewports {
		for _, w := range widgets {
			for _, b := range []Bounds{
				WidgetBounds(vp, w, 0.05),
				ThumbnailBounds(vp, w, DefaultInsets()),
				ThumbnailBounds(vp, w, PixelInsets()),
			} {
				require.LessOrEqual(t, b.MinX, b.MaxX, "viewport=%v widget=%v", vp, w)
				require.LessOrEqual(t, b.MinY, b.MaxY, "viewport=%v widget=%v", vp, w)
				for _, c := range candidates {
					p := b.Clamp(c)
					assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
					assert.True(t, b.Contains(p), "clamp(%v) = %v outside %+v", c, p, b)
				}
			}
		}
	}
}

func TestThumbnailBounds_PixelLayout(t *testing.T) {
	// 1600 wide: padding = clamp(20, 32, 40) = 32.
	b := ThumbnailBounds(Size{W: 1600, H: 1000}, Size{W: 120, H: 120}, PixelInsets())

	assert.InDelta(t, 80+32, b.MinX, 1e-9)
	assert.InDelta(t, 1520-120-32, b.MaxX, 1e-9)
	assert.InDelta(t, 50+40+32, b.MinY, 1e-9)
	assert.InDelta(t, 950-120-100-32, b.MaxY, 1e-9)
}

func TestInsetsPadding(t *testing.T) {
	in := PixelInsets()
	assert.Equal(t, 20.0, in.Padding(500))
	assert.InDelta(t, 30.0, in.Padding(1500), 1e-9)
	assert.Equal(t, 40.0, in.Padding(4000))
}

func TestRescale_CenterStaysCentered(t *testing.T) {
	thumb := Size{W: 14, H: 5}
	before := ThumbnailBounds(Size{W: 120, H: 40}, thumb, DefaultInsets())
	after := ThumbnailBounds(Size{W: 200, H: 60}, thumb, DefaultInsets())

	got := before.Rescale(before.Center(), after)
	want := after.Center()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestRescale_PreservesEdges(t *testing.T) {
	from := Bounds{MinX: 10, MaxX: 110, MinY: 5, MaxY: 55}
	to := Bounds{MinX: 0, MaxX: 50, MinY: 0, MaxY: 10}

	assert.Equal(t, Point{X: 0, Y: 0}, from.Rescale(Point{X: 10, Y: 5}, to))
	assert.Equal(t, Point{X: 50, Y: 10}, from.Rescale(Point{X: 110, Y: 55}, to))
	assert.Equal(t, Point{X: 12.5, Y: 2.5}, from.Rescale(Point{X: 35, Y: 17.5}, to))
}

func TestRescale_EmptySourceRangeClamps(t *testing.T) {
	from := Bounds{MinX: 4, MaxX: 4, MinY: 4, MaxY: 4}
	to := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

	assert.Equal(t, Point{X: 10, Y: 0}, from.Rescale(Point{X: 30, Y: -2}, to))
}

func TestRectContains(t *testing.T) {
	r := RectOf(2, 3, 4, 2)
	assert.True(t, r.Contains(Point{X: 2, Y: 3}))
	assert.True(t, r.Contains(Point{X: 5, Y: 4}))
	assert.False(t, r.Contains(Point{X: 6, Y: 4}))
	assert.False(t, r.Contains(Point{X: 3, Y: 5}))
}
