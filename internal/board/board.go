package board

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Board owns the tiles, the derived intersection/path graph, the harbors and
// the robber. Paths refer to intersections by coordinate only.
type Board struct {
	tiles         map[Coords]Tile
	tileOrder     []Coords
	intersections map[Coords]*Intersection
	paths         map[PathKey]*Path
	harbors       map[PathKey]Harbor
	robber        Coords
}

// New builds a board from its tiles. The intersections are the closure of
// every tile's six corners and a path joins every pair of intersections one
// unit step apart. If robber is nil the robber starts on the first desert in
// tiles; a board with neither fails with ErrNoRobberTile.
func New(tiles []Tile, harbors []Harbor, robber *Coords) (*Board, error) {
	b := &Board{
		tiles:         make(map[Coords]Tile, len(tiles)),
		tileOrder:     make([]Coords, 0, len(tiles)),
		intersections: make(map[Coords]*Intersection),
		paths:         make(map[PathKey]*Path),
		harbors:       make(map[PathKey]Harbor, len(harbors)),
	}

	for _, t := range tiles {
		if err := validateTile(t); err != nil {
			return nil, err
		}
		if _, dup := b.tiles[t.Coords]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTile, t.Coords)
		}
		b.tiles[t.Coords] = t
		b.tileOrder = append(b.tileOrder, t.Coords)
	}

	// Shared corners collapse in the set
	corners := mapset.New[Coords]()
	for _, c := range b.tileOrder {
		for _, off := range UnitOffsets {
			corners.Put(c.Add(off))
		}
	}
	corners.Each(func(c Coords) {
		b.intersections[c] = &Intersection{Coords: c}
	})

	for c := range b.intersections {
		for _, n := range c.Neighbors() {
			if _, ok := b.intersections[n]; !ok {
				continue
			}
			key := NewPathKey(c, n)
			if _, seen := b.paths[key]; !seen {
				b.paths[key] = &Path{Key: key}
			}
		}
	}

	for _, h := range harbors {
		key := NewPathKey(h.Path[0], h.Path[1])
		if _, ok := b.paths[key]; !ok {
			return nil, fmt.Errorf("%w: harbor on %s", ErrPathNotFound, key)
		}
		h.Path = key
		b.harbors[key] = h
	}

	if robber != nil {
		if _, ok := b.tiles[*robber]; !ok {
			return nil, fmt.Errorf("%w: robber at %s is not a tile", ErrInvalidCoords, *robber)
		}
		b.robber = *robber
		return b, nil
	}
	for _, c := range b.tileOrder {
		if !b.tiles[c].Type.Productive() {
			b.robber = c
			return b, nil
		}
	}
	return nil, ErrNoRobberTile
}

func validateTile(t Tile) error {
	if t.Type < HexForest || t.Type > HexDesert {
		return fmt.Errorf("%w: unknown terrain %d at %s", ErrInvalidTile, t.Type, t.Coords)
	}
	if t.Type.Productive() && !validToken(t.Token) {
		return fmt.Errorf("%w: %s at %s has token %d", ErrInvalidTile, t.Type, t.Coords, t.Token)
	}
	if !t.Type.Productive() && t.Token != 0 {
		return fmt.Errorf("%w: %s at %s cannot carry a token", ErrInvalidTile, t.Type, t.Coords)
	}
	return nil
}

// Tiles returns the tiles in the order they were given to New.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.tileOrder))
	for _, c := range b.tileOrder {
		out = append(out, b.tiles[c])
	}
	return out
}

// Tile returns the tile at c.
func (b *Board) Tile(c Coords) (Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// IsValidTileCoords returns true if a tile exists at c.
func (b *Board) IsValidTileCoords(c Coords) bool {
	_, ok := b.tiles[c]
	return ok
}

// HasIntersection returns true if c is an intersection.
func (b *Board) HasIntersection(c Coords) bool {
	_, ok := b.intersections[c]
	return ok
}

// HasPath returns true if a path joins a and c.
func (b *Board) HasPath(a, c Coords) bool {
	_, ok := b.paths[NewPathKey(a, c)]
	return ok
}

// IntersectionCoords returns every intersection, sorted.
func (b *Board) IntersectionCoords() []Coords {
	out := make([]Coords, 0, len(b.intersections))
	for c := range b.intersections {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// PathKeys returns every path, sorted.
func (b *Board) PathKeys() []PathKey {
	out := make([]PathKey, 0, len(b.paths))
	for k := range b.paths {
		out = append(out, k)
	}
	SortPathKeys(out)
	return out
}

// BuildingAt returns the settlement or city at c, if any.
func (b *Board) BuildingAt(c Coords) (IntersectionBuilding, bool) {
	i, ok := b.intersections[c]
	if !ok || i.Building == nil {
		return IntersectionBuilding{}, false
	}
	return *i.Building, true
}

// RoadAt returns the road on the path between a and c, if any.
func (b *Board) RoadAt(a, c Coords) (PathBuilding, bool) {
	p, ok := b.paths[NewPathKey(a, c)]
	if !ok || p.Building == nil {
		return PathBuilding{}, false
	}
	return *p.Building, true
}

// Buildings returns every settlement and city owned by playerID, sorted by
// coordinate. An empty playerID returns all of them.
func (b *Board) Buildings(playerID string) []IntersectionBuilding {
	var out []IntersectionBuilding
	for _, c := range b.IntersectionCoords() {
		i := b.intersections[c]
		if i.Building == nil {
			continue
		}
		if playerID == "" || i.Building.Owner == playerID {
			out = append(out, *i.Building)
		}
	}
	return out
}

// Roads returns every road owned by playerID, sorted by path. An empty
// playerID returns all of them.
func (b *Board) Roads(playerID string) []PathBuilding {
	var out []PathBuilding
	for _, k := range b.PathKeys() {
		p := b.paths[k]
		if p.Building == nil {
			continue
		}
		if playerID == "" || p.Building.Owner == playerID {
			out = append(out, *p.Building)
		}
	}
	return out
}

// Harbors returns the harbors sorted by path.
func (b *Board) Harbors() []Harbor {
	keys := make([]PathKey, 0, len(b.harbors))
	for k := range b.harbors {
		keys = append(keys, k)
	}
	SortPathKeys(keys)
	out := make([]Harbor, 0, len(keys))
	for _, k := range keys {
		out = append(out, b.harbors[k])
	}
	return out
}

// HarborAt returns the harbor on the path between a and c, if any.
func (b *Board) HarborAt(a, c Coords) (Harbor, bool) {
	h, ok := b.harbors[NewPathKey(a, c)]
	return h, ok
}

// Robber returns the tile the robber is on.
func (b *Board) Robber() Coords {
	return b.robber
}

// MoveRobber places the robber on the tile at c.
func (b *Board) MoveRobber(c Coords) error {
	if !b.IsValidTileCoords(c) {
		return fmt.Errorf("%w: %s is not a tile", ErrInvalidCoords, c)
	}
	b.robber = c
	return nil
}

// ConnectedIntersections returns the intersections one path away from c.
func (b *Board) ConnectedIntersections(c Coords) []Coords {
	var out []Coords
	for _, n := range c.Neighbors() {
		if _, ok := b.intersections[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// PathsAt returns the paths that end at intersection c.
func (b *Board) PathsAt(c Coords) []PathKey {
	var out []PathKey
	for _, n := range c.Neighbors() {
		key := NewPathKey(c, n)
		if _, ok := b.paths[key]; ok {
			out = append(out, key)
		}
	}
	return out
}

// TilesAroundIntersection returns the coordinates of the tiles touching
// intersection c (at most three).
func (b *Board) TilesAroundIntersection(c Coords) []Coords {
	var out []Coords
	for _, n := range c.Neighbors() {
		if _, ok := b.tiles[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// IntersectionsAroundTile returns the six corners of the tile at c.
func (b *Board) IntersectionsAroundTile(c Coords) []Coords {
	if !b.IsValidTileCoords(c) {
		return nil
	}
	corners := c.Neighbors()
	return corners[:]
}

// ResourcesAroundIntersection counts the resources produced by the tiles
// touching c. Deserts are skipped.
func (b *Board) ResourcesAroundIntersection(c Coords) map[Resource]int {
	out := make(map[Resource]int)
	for _, t := range b.TilesAroundIntersection(c) {
		if r := b.tiles[t].Type.Resource(); r != ResourceNone {
			out[r]++
		}
	}
	return out
}

// PlayersOnTile returns the owners of buildings on the corners of tile c,
// sorted and without repeats.
func (b *Board) PlayersOnTile(c Coords) []string {
	var out []string
	for _, corner := range b.IntersectionsAroundTile(c) {
		i := b.intersections[corner]
		if i.Building != nil && !slices.Contains(out, i.Building.Owner) {
			out = append(out, i.Building.Owner)
		}
	}
	slices.Sort(out)
	return out
}
