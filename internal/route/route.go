// Package route names the top-level views and the capability to switch
// between them.
package route

import "fmt"

// Route identifies a top-level view.
type Route int

const (
	Lock Route = iota
	Desktop
	Letter
)

func (r Route) String() string {
	switch r {
	case Lock:
		return "lock"
	case Desktop:
		return "desktop"
	case Letter:
		return "letter"
	default:
		return fmt.Sprintf("route(%d)", int(r))
	}
}

// Navigator switches the active view.
type Navigator interface {
	Navigate(Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }
