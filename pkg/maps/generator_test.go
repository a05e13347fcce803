package maps

import (
	"slices"
	"testing"

	"catan-engine/internal/board"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Random(42)
	b := Random(42)
	if a.ID != "random-42" {
		t.Errorf("Expected ID random-42, got %s", a.ID)
	}
	if !slices.Equal(a.Tiles, b.Tiles) || !slices.Equal(a.Harbors, b.Harbors) {
		t.Error("Expected the same seed to deal the same board")
	}

	differs := false
	for seed := int64(1); seed <= 10 && !differs; seed++ {
		if !slices.Equal(Random(seed).Tiles, a.Tiles) {
			differs = true
		}
	}
	if !differs {
		t.Error("Expected other seeds to deal different boards")
	}
}

func TestGenerate_StandardContents(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		l := Random(seed)

		terrain := map[board.HexType]int{}
		var tokens []int
		var desert board.Coords
		for _, tile := range l.Tiles {
			terrain[tile.Type]++
			if tile.Type == board.HexDesert {
				desert = tile.Coords
				if tile.Token != 0 {
					t.Errorf("Seed %d: expected no token on the desert, got %d", seed, tile.Token)
				}
				continue
			}
			tokens = append(tokens, tile.Token)
		}
		for _, tc := range terrainCounts {
			if terrain[tc.terrain] != tc.count {
				t.Errorf("Seed %d: expected %d %s, got %d", seed, tc.count, tc.terrain, terrain[tc.terrain])
			}
		}
		if !slices.Equal(tokens, tokenOrder) {
			t.Errorf("Seed %d: expected tokens dealt in spiral order, got %v", seed, tokens)
		}

		specific := map[board.Resource]int{}
		for _, h := range l.Harbors {
			specific[h.Resource]++
		}
		if specific[board.ResourceNone] != 4 {
			t.Errorf("Seed %d: expected 4 generic harbors, got %d", seed, specific[board.ResourceNone])
		}
		for _, r := range board.AllResources() {
			if specific[r] != 1 {
				t.Errorf("Seed %d: expected one %s harbor, got %d", seed, r, specific[r])
			}
		}

		b, err := l.NewBoard()
		if err != nil {
			t.Fatalf("Seed %d: NewBoard: %v", seed, err)
		}
		if len(b.IntersectionCoords()) != 54 || len(b.PathKeys()) != 72 {
			t.Errorf("Seed %d: expected a 54/72 graph, got %d/%d", seed, len(b.IntersectionCoords()), len(b.PathKeys()))
		}
		if b.Robber() != desert {
			t.Errorf("Seed %d: expected the robber on the desert %s, got %s", seed, desert, b.Robber())
		}
	}
}

func TestGenerator_Sequence(t *testing.T) {
	g := NewGenerator(5)
	first := g.Generate()
	second := g.Generate()
	if first.ID != second.ID {
		t.Errorf("Expected boards from one generator to share an ID, got %s and %s", first.ID, second.ID)
	}

	replay := NewGenerator(5)
	replay.Generate()
	if !slices.Equal(replay.Generate().Tiles, second.Tiles) {
		t.Error("Expected a replayed generator to deal the same second board")
	}
}
