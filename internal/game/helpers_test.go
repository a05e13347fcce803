package game

import (
	"math/rand"
	"testing"

	"catan-engine/internal/board"
)

// Tiles of a seven-hex board: desert in the middle, ring tokens picked so
// corner (1,0) sees forest on 6 and hills on 8.
func testTiles() []board.Tile {
	return []board.Tile{
		{Coords: board.C(0, 0), Type: board.HexDesert},
		{Coords: board.C(1, 1), Type: board.HexForest, Token: 6},
		{Coords: board.C(2, -1), Type: board.HexHills, Token: 8},
		{Coords: board.C(1, -2), Type: board.HexPasture, Token: 5},
		{Coords: board.C(-1, -1), Type: board.HexFields, Token: 9},
		{Coords: board.C(-2, 1), Type: board.HexMountains, Token: 10},
		{Coords: board.C(-1, 2), Type: board.HexForest, Token: 4},
	}
}

var (
	brickHarbor   = board.Harbor{Path: board.NewPathKey(board.C(3, -1), board.C(3, -2)), Resource: board.ResourceBrick}
	genericHarbor = board.Harbor{Path: board.NewPathKey(board.C(-3, 2), board.C(-3, 1))}
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(testTiles(), []board.Harbor{brickHarbor, genericHarbor}, nil)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	return b
}

// newTestGame seats n players named p0, p1, ... on the test board.
func newTestGame(t *testing.T, n int) (*GameState, []*Player) {
	t.Helper()
	players := make([]*Player, n)
	for i := range players {
		players[i] = NewPlayer("p"+string(rune('0'+i)), AllColors()[i])
	}
	g, err := NewGame(testBoard(t), players, DefaultSettings(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, players
}

// act skips to p's actions phase.
func act(g *GameState, p *Player) {
	g.Phase = PhaseActions
	g.CurrentPlayerID = p.ID
}

// corner returns the i-th corner of the tile at h.
func corner(h board.Coords, i int) board.Coords {
	return h.Add(board.UnitOffsets[((i%6)+6)%6])
}

// edge returns the path from corner i to corner i+1 of the tile at h.
func edge(h board.Coords, i int) board.PathKey {
	return board.NewPathKey(corner(h, i), corner(h, i+1))
}

func buildFreeRoad(t *testing.T, g *GameState, p *Player, k board.PathKey) {
	t.Helper()
	act(g, p)
	if err := g.BuildRoad(p.ID, k, false, false); err != nil {
		t.Fatalf("road on %s: %v", k, err)
	}
}

func buildFreeSettlement(t *testing.T, g *GameState, p *Player, c board.Coords) {
	t.Helper()
	act(g, p)
	if err := g.BuildSettlement(p.ID, c, false, false); err != nil {
		t.Fatalf("settlement at %s: %v", c, err)
	}
}
