package persist

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/five82/memento/internal/geometry"
)

// Positions maps a thumbnail id to its committed top-left position.
//
// The stored form is a JSON object keyed by the decimal id:
//
//	{"3": {"left": 12, "top": 5}}
type Positions map[int]geometry.Point

type wirePoint struct {
	Left *float64 `json:"left"`
	Top  *float64 `json:"top"`
}

// Clone returns an independent copy.
func (p Positions) Clone() Positions {
	out := make(Positions, len(p))
	for id, pt := range p {
		out[id] = pt
	}
	return out
}

// IDs returns the ids in ascending order.
func (p Positions) IDs() []int {
	ids := make([]int, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (p Positions) MarshalJSON() ([]byte, error) {
	out := make(map[string]wirePoint, len(p))
	for id, pt := range p {
		left, top := pt.X, pt.Y
		out[strconv.Itoa(id)] = wirePoint{Left: &left, Top: &top}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the stored object form. Entries with a non-numeric
// key or without both coordinates are dropped.
func (p *Positions) UnmarshalJSON(data []byte) error {
	var raw map[string]wirePoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("positions: expected object")
	}
	out := make(Positions, len(raw))
	for key, wp := range raw {
		id, err := strconv.Atoi(key)
		if err != nil || wp.Left == nil || wp.Top == nil {
			continue
		}
		out[id] = geometry.Point{X: *wp.Left, Y: *wp.Top}
	}
	*p = out
	return nil
}
