package state

import (
	"fmt"
	"strings"
)

// WidgetID names an overlay widget whose visibility the session tracks.
type WidgetID int

const (
	Plans WidgetID = iota
	Notes
	Photos
	Music
	Calendar
	Letters

	widgetCount
)

var widgetNames = [widgetCount]string{
	Plans:    "plans",
	Notes:    "notes",
	Photos:   "photos",
	Music:    "music",
	Calendar: "calendar",
	Letters:  "letters",
}

// AllWidgets lists every widget in dock order.
func AllWidgets() []WidgetID {
	ids := make([]WidgetID, 0, widgetCount)
	for id := WidgetID(0); id < widgetCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is one of the enumerated widgets.
func (id WidgetID) Valid() bool {
	return id >= 0 && id < widgetCount
}

func (id WidgetID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("widget(%d)", int(id))
	}
	return widgetNames[id]
}

// ParseWidgetID resolves a widget name, case-insensitively.
func ParseWidgetID(name string) (WidgetID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for id, n := range widgetNames {
		if n == key {
			return WidgetID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown widget %q", name)
}
