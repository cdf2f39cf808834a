package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/memento/internal/gallery"
	"github.com/five82/memento/internal/geometry"
)

func TestLinesRegions(t *testing.T) {
	noop := func(Model) tea.Cmd { return nil }

	var l lines
	l.text("ab").button("[ok]", noop).newline()
	l.area(5, 2, noop)
	l.text("x").newline().text("y")
	p := l.panel()

	if len(p.regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(p.regions))
	}
	if got, want := p.regions[0].rect, geometry.RectOf(2, 0, 4, 1); got != want {
		t.Fatalf("button rect = %+v, want %+v", got, want)
	}
	if got, want := p.regions[1].rect, geometry.RectOf(0, 1, 5, 2); got != want {
		t.Fatalf("area rect = %+v, want %+v", got, want)
	}
	if p.view != "ab[ok]\nx\ny" {
		t.Fatalf("view = %q", p.view)
	}
}

func TestPanelAtPrefersLastRegion(t *testing.T) {
	hit := ""
	var l lines
	l.area(10, 3, func(Model) tea.Cmd { hit = "area"; return nil })
	l.button("btn", func(Model) tea.Cmd { hit = "button"; return nil })
	p := l.panel()

	reg, ok := p.at(geometry.Point{X: 1, Y: 0})
	if !ok {
		t.Fatal("expected a region")
	}
	reg.act(Model{})
	if hit != "button" {
		t.Fatalf("hit = %q, want button", hit)
	}

	if _, ok := p.at(geometry.Point{X: 11, Y: 0}); ok {
		t.Fatal("point outside every region matched")
	}
}

func TestWindowShiftsRegions(t *testing.T) {
	var l lines
	l.button("x", func(Model) tea.Cmd { return nil })
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	p := window(style, 6, l.panel())

	if got, want := p.regions[0].rect.Origin, (geometry.Point{X: windowPadX, Y: windowPadY}); got != want {
		t.Fatalf("origin = %+v, want %+v", got, want)
	}
	if w := lipgloss.Width(p.view); w != 10 {
		t.Fatalf("outer width = %d, want 10", w)
	}
}

func TestTextHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"pad", pad("ab", 4), "ab  "},
		{"pad wide", pad("abcdef", 4), "abcdef"},
		{"center", center("ab", 6), "  ab  "},
		{"center odd", center("ab", 5), " ab  "},
		{"truncate", truncate("photograph", 6), "photo…"},
		{"truncate short", truncate("p1", 6), "p1"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(testItem("p1")); got != "p1.jpg" {
		t.Fatalf("displayName = %q", got)
	}
	if got := displayName(testItem("map.png")); got != "map.png" {
		t.Fatalf("displayName = %q", got)
	}
}

func testItem(name string) gallery.Item {
	return gallery.Item{Name: name}
}
