package board

import (
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// testPlayer is a minimal Owner that records harbor connections.
type testPlayer struct {
	id       string
	harbors  mapset.Set[Harbor]
	connects int
}

func newTestPlayer(id string) *testPlayer {
	return &testPlayer{id: id, harbors: mapset.New[Harbor]()}
}

func (p *testPlayer) PlayerID() string { return p.id }

func (p *testPlayer) ConnectHarbor(h Harbor) {
	p.connects++
	p.harbors.Put(h)
}

func (p *testPlayer) HasHarbor(h Harbor) bool { return p.harbors.Has(h) }

// hexagon returns the tile centres within radius rings of the origin.
func hexagon(radius int) []Coords {
	var out []Coords
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			z := -x - y
			if z < -radius || z > radius {
				continue
			}
			// Axial tile steps map onto the lattice as (2,-1) and (1,1)
			out = append(out, C(2*x+y, -x+y))
		}
	}
	return out
}

var productiveTypes = []HexType{HexForest, HexHills, HexPasture, HexFields, HexMountains}
var tokenCycle = []int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12}

// tilesFor makes a desert at the first coordinate and productive tiles with
// tokens everywhere else.
func tilesFor(coords []Coords) []Tile {
	tiles := make([]Tile, 0, len(coords))
	for i, c := range coords {
		if i == 0 {
			tiles = append(tiles, Tile{Coords: c, Type: HexDesert})
			continue
		}
		tiles = append(tiles, Tile{
			Coords: c,
			Type:   productiveTypes[i%len(productiveTypes)],
			Token:  tokenCycle[i%len(tokenCycle)],
		})
	}
	return tiles
}

func mustBoard(t *testing.T, tiles []Tile, harbors []Harbor, robber *Coords) *Board {
	t.Helper()
	b, err := New(tiles, harbors, robber)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

// singleHex is a board of one desert at the origin.
func singleHex(t *testing.T) *Board {
	return mustBoard(t, []Tile{{Coords: C(0, 0), Type: HexDesert}}, nil, nil)
}

// flower is the origin tile plus its six neighbours.
func flower(t *testing.T) *Board {
	return mustBoard(t, tilesFor(hexagon(1)), nil, nil)
}

// ring returns the i-th corner of the tile at h, walking around it.
func ring(h Coords, i int) Coords {
	return h.Add(UnitOffsets[((i%6)+6)%6])
}

// ringPath returns the path from corner i to corner i+1 of the tile at h.
func ringPath(h Coords, i int) PathKey {
	return NewPathKey(ring(h, i), ring(h, i+1))
}

func placeSettlement(t *testing.T, b *Board, p *testPlayer, c Coords) {
	t.Helper()
	if err := b.PlaceIntersectionBuilding(p, c, BuildingSettlement, false); err != nil {
		t.Fatalf("settlement at %s: %v", c, err)
	}
}

func placeRoad(t *testing.T, b *Board, p *testPlayer, k PathKey) {
	t.Helper()
	if err := b.PlacePathBuilding(p, BuildingRoad, k, false); err != nil {
		t.Fatalf("road on %s: %v", k, err)
	}
}
