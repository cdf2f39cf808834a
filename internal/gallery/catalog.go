package gallery

import (
	"github.com/five82/memento/internal/geometry"
)

// Group is the dock toggle that reveals an item.
type Group int

const (
	Photos Group = iota
	Letters
)

func (g Group) String() string {
	if g == Letters {
		return "letters"
	}
	return "photos"
}

// Item is one desktop thumbnail. ID is stable across runs and keys the saved
// thumbnail position.
type Item struct {
	ID    int
	Name  string
	Group Group
	// Folder holds the full-size image, relative to the asset root.
	Folder string
	// File overrides Name as the full-size file stem.
	File string
	// Letter marks the centred thumbnail that opens the letter view.
	Letter bool
}

// Stem is the base name probed for the full-size image.
func (it Item) Stem() string {
	if it.File != "" {
		return it.File
	}
	return it.Name
}

// Anchor places a thumbnail as a fraction of the viewport measured from the
// chosen edges.
type Anchor struct {
	X, Y       float64
	FromRight  bool
	FromBottom bool
	Center     bool
}

// Resolve converts the anchor into a top-left cell position for a thumbnail.
func (a Anchor) Resolve(viewport, thumb geometry.Size) geometry.Point {
	if a.Center {
		return geometry.Point{X: (viewport.W - thumb.W) / 2, Y: (viewport.H - thumb.H) / 2}
	}
	p := geometry.Point{X: viewport.W * a.X, Y: viewport.H * a.Y}
	if a.FromRight {
		p.X = viewport.W - p.X - thumb.W
	}
	if a.FromBottom {
		p.Y = viewport.H - p.Y - thumb.H
	}
	return p
}

var baseAnchors = []Anchor{
	{X: 0.08, Y: 0.15},
	{X: 0.12, Y: 0.22, FromRight: true},
	{X: 0.45, Y: 0.10},
	{X: 0.10, Y: 0.35},
	{X: 0.30, Y: 0.18, FromRight: true},
	{X: 0.25, Y: 0.45},
	{X: 0.10, Y: 0.28, FromRight: true},
	{X: 0.20, Y: 0.25, FromBottom: true},
	{X: 0.25, Y: 0.38, FromRight: true, FromBottom: true},
	{X: 0.15, Y: 0.52},
	{X: 0.25, Y: 0.38, FromRight: true},
	{X: 0.42, Y: 0.20, FromBottom: true},
	{X: 0.15, Y: 0.30, FromRight: true, FromBottom: true},
	{X: 0.35, Y: 0.65},
	{X: 0.35, Y: 0.15, FromRight: true, FromBottom: true},
}

// Slot is a visible thumbnail with its default placement.
type Slot struct {
	Item   Item
	Anchor Anchor
}

// Catalog is the ordered list of desktop items.
type Catalog struct {
	items []Item
}

// NewCatalog assigns each item its position as ID, so saved positions stay
// attached as long as the list order is kept.
func NewCatalog(items []Item) *Catalog {
	out := make([]Item, len(items))
	for i, it := range items {
		it.ID = i
		out[i] = it
	}
	return &Catalog{items: out}
}

// DefaultCatalog returns the built-in items.
func DefaultCatalog() *Catalog {
	var items []Item
	add := func(name string, g Group, folder string) {
		items = append(items, Item{ID: len(items), Name: name, Group: g, Folder: folder})
	}
	add("p1", Letters, "images")
	items = append(items, Item{ID: len(items), Name: "letter", Group: Letters, Folder: "images", Letter: true})
	add("p2", Letters, "images")
	add("p3", Letters, "images")
	items = append(items, Item{ID: len(items), Name: "location", Group: Letters, Folder: "images", File: "myart"})
	add("location eastwood", Photos, "photos")
	add("location cubao", Photos, "photos")
	for _, n := range []string{"p4", "p5", "p6", "p7"} {
		add(n, Letters, "images")
	}
	for c := 'a'; c <= 'r'; c++ {
		add(string(c), Photos, "photos")
	}
	return &Catalog{items: items}
}

// Items returns every item in catalog order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Item looks up an item by ID.
func (c *Catalog) Item(id int) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Photos returns the items the image viewer can step through, in order.
func (c *Catalog) Photos() []Item {
	var out []Item
	for _, it := range c.items {
		if it.Group == Photos {
			out = append(out, it)
		}
	}
	return out
}

// Slots returns the thumbnails revealed by group. Non-letter items take the
// base anchors in order; the letter is always centred and comes last so it
// draws on top.
func (c *Catalog) Slots(g Group) []Slot {
	var out []Slot
	var letter *Item
	n := 0
	for i := range c.items {
		it := c.items[i]
		if it.Group != g {
			continue
		}
		if it.Letter {
			letter = &c.items[i]
			continue
		}
		out = append(out, Slot{Item: it, Anchor: baseAnchors[n%len(baseAnchors)]})
		n++
	}
	if letter != nil {
		out = append(out, Slot{Item: *letter, Anchor: Anchor{Center: true}})
	}
	return out
}
