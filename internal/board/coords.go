// Package board holds the spatial state of a Catan board and the rules that
// read and mutate it: graph construction, building placement, roll yields and
// road-network length.
//
// Tiles, intersections and paths all live on one triangular lattice addressed
// by axial (q, r) coordinates. Tile centres satisfy (q-r) mod 3 == 0 and the
// six corners of a tile sit at the unit offsets around it, so every spatial
// entity has a unique Coords key.
//
// A Board is not safe for concurrent use. Callers sharing one across
// goroutines must guard the whole board with a single lock, since placement
// validation reads neighbours, harbors and road ownership together.
package board

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Coords is a position on the triangular lattice.
type Coords struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// C is shorthand for Coords{Q: q, R: r}.
func C(q, r int) Coords {
	return Coords{Q: q, R: r}
}

// Add returns c + o.
func (c Coords) Add(o Coords) Coords {
	return Coords{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns c - o.
func (c Coords) Sub(o Coords) Coords {
	return Coords{Q: c.Q - o.Q, R: c.R - o.R}
}

func (c Coords) String() string {
	return fmt.Sprintf("(q: %d, r: %d)", c.Q, c.R)
}

// UnitOffsets are the six lattice steps. Added to a tile they give its
// corners; added to an intersection they give the candidate intersections
// one path away.
var UnitOffsets = [6]Coords{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// Neighbors returns the six lattice points one step from c.
func (c Coords) Neighbors() [6]Coords {
	var result [6]Coords
	for i, off := range UnitOffsets {
		result[i] = c.Add(off)
	}
	return result
}

func compareCoords(a, b Coords) int {
	if n := cmp.Compare(a.Q, b.Q); n != 0 {
		return n
	}
	return cmp.Compare(a.R, b.R)
}

// SortCoords orders coordinates by Q then R.
func SortCoords(cs []Coords) {
	slices.SortFunc(cs, compareCoords)
}

// PathKey identifies a path by the unordered pair of intersections it joins.
// The pair is stored in canonical order so equal paths compare equal.
type PathKey [2]Coords

// NewPathKey builds the key for the path between a and b.
func NewPathKey(a, b Coords) PathKey {
	if compareCoords(a, b) > 0 {
		a, b = b, a
	}
	return PathKey{a, b}
}

// Has reports whether c is one of the two endpoints.
func (k PathKey) Has(c Coords) bool {
	return k[0] == c || k[1] == c
}

// Other returns the endpoint opposite c. c must be an endpoint.
func (k PathKey) Other(c Coords) Coords {
	if k[0] == c {
		return k[1]
	}
	return k[0]
}

func (k PathKey) String() string {
	return fmt.Sprintf("{%s, %s}", k[0], k[1])
}

// SortPathKeys orders path keys by their first then second endpoint.
func SortPathKeys(ks []PathKey) {
	slices.SortFunc(ks, comparePathKeys)
}

func comparePathKeys(a, b PathKey) int {
	if n := compareCoords(a[0], b[0]); n != 0 {
		return n
	}
	return compareCoords(a[1], b[1])
}

// CoordsOf returns the members of set, sorted.
func CoordsOf(set mapset.Set[Coords]) []Coords {
	out := make([]Coords, 0, set.Size())
	set.Each(func(c Coords) {
		out = append(out, c)
	})
	SortCoords(out)
	return out
}

// PathKeysOf returns the members of set, sorted.
func PathKeysOf(set mapset.Set[PathKey]) []PathKey {
	out := make([]PathKey, 0, set.Size())
	set.Each(func(k PathKey) {
		out = append(out, k)
	})
	SortPathKeys(out)
	return out
}
