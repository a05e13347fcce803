package maps

import (
	"fmt"
	"math/rand"

	"catan-engine/internal/board"
)

// Standard board contents.
var (
	terrainCounts = []struct {
		terrain board.HexType
		count   int
	}{
		{board.HexForest, 4},
		{board.HexPasture, 4},
		{board.HexFields, 4},
		{board.HexHills, 3},
		{board.HexMountains, 3},
		{board.HexDesert, 1},
	}

	// Dealt in order around the spiral; the desert is skipped.
	tokenOrder = []int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11}

	// Outer ring, inner ring, then the centre.
	standardTiles = []board.Coords{
		board.C(4, -2), board.C(3, 0), board.C(2, 2), board.C(0, 3),
		board.C(-2, 4), board.C(-3, 3), board.C(-4, 2), board.C(-3, 0),
		board.C(-2, -2), board.C(0, -3), board.C(2, -4), board.C(3, -3),
		board.C(2, -1), board.C(1, 1), board.C(-1, 2), board.C(-2, 1),
		board.C(-1, -1), board.C(1, -2),
		board.C(0, 0),
	}

	standardHarborPaths = []board.PathKey{
		board.NewPathKey(board.C(5, -2), board.C(5, -3)),
		board.NewPathKey(board.C(4, 0), board.C(3, 1)),
		board.NewPathKey(board.C(1, 3), board.C(0, 4)),
		board.NewPathKey(board.C(-2, 5), board.C(-3, 5)),
		board.NewPathKey(board.C(-4, 3), board.C(-4, 4)),
		board.NewPathKey(board.C(-4, 0), board.C(-4, 1)),
		board.NewPathKey(board.C(-3, -2), board.C(-2, -3)),
		board.NewPathKey(board.C(1, -4), board.C(0, -4)),
		board.NewPathKey(board.C(3, -4), board.C(4, -4)),
	}

	genericHarbors = 4
)

// Generator deals random standard boards.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a generator. The same seed always deals the same
// sequence of boards.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Generate deals a 19 tile board: shuffled terrain, tokens in spiral order
// and shuffled harbors on the fixed coastal paths.
func (g *Generator) Generate() *Layout {
	l := &Layout{
		ID:   fmt.Sprintf("random-%d", g.seed),
		Name: fmt.Sprintf("Random Island #%d", g.seed),
	}

	terrain := g.terrainDeck()
	tokens := tokenOrder
	for _, c := range standardTiles {
		t := board.Tile{Coords: c, Type: terrain[len(terrain)-1]}
		terrain = terrain[:len(terrain)-1]
		if t.Type.Productive() {
			t.Token = tokens[0]
			tokens = tokens[1:]
		}
		l.Tiles = append(l.Tiles, t)
	}

	for i, res := range g.harborDeck() {
		l.Harbors = append(l.Harbors, board.Harbor{
			Path:     standardHarborPaths[i],
			Resource: res,
		})
	}

	return l
}

func (g *Generator) terrainDeck() []board.HexType {
	var deck []board.HexType
	for _, tc := range terrainCounts {
		for i := 0; i < tc.count; i++ {
			deck = append(deck, tc.terrain)
		}
	}
	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func (g *Generator) harborDeck() []board.Resource {
	deck := board.AllResources()
	for i := 0; i < genericHarbors; i++ {
		deck = append(deck, board.ResourceNone)
	}
	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Random deals one board from seed.
func Random(seed int64) *Layout {
	return NewGenerator(seed).Generate()
}
