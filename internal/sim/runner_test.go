package sim

import (
	"context"
	"errors"
	"testing"

	"catan-engine/internal/board"
	"catan-engine/internal/game"
	"catan-engine/pkg/maps"
)

func beginnerBoard(t *testing.T) *board.Board {
	t.Helper()
	l, err := maps.Load("beginner.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := l.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func options(players, rounds int, seed int64) Options {
	return Options{
		Players:   players,
		MaxRounds: rounds,
		Seed:      seed,
		Settings:  game.DefaultSettings(),
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"too few players", options(1, 10, 1)},
		{"too many players", options(game.MaxPlayers+1, 10, 1)},
		{"no rounds", options(3, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(beginnerBoard(t), tt.opts); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRun_PlaysToWinner(t *testing.T) {
	r, err := New(beginnerBoard(t), options(4, 1000, 7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Winner == nil {
		t.Fatalf("Expected a winner within 1000 rounds, scores %v", res.Scores)
	}
	g := r.Game()
	if !g.IsGameOver() || g.WinnerID != res.Winner.ID {
		t.Errorf("Expected the game to be over with %s as winner", res.Winner.Name)
	}
	if len(res.Scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(res.Scores))
	}
	for _, s := range res.Scores {
		if s.Player.ID == res.Winner.ID && s.Points < g.Settings.VictoryPoints {
			t.Errorf("Expected the winner to have at least %d points, got %d", g.Settings.VictoryPoints, s.Points)
		}
		if s.Points < 2 {
			t.Errorf("%s: expected at least the 2 starting points, got %d", s.Player.Name, s.Points)
		}
	}
	if res.Turns < res.Rounds {
		t.Errorf("Expected at least one turn per round, got %d turns in %d rounds", res.Turns, res.Rounds)
	}
}

func TestRun_Deterministic(t *testing.T) {
	play := func() *Result {
		r, err := New(beginnerBoard(t), options(3, 1000, 21))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		res, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return res
	}

	a, b := play(), play()
	if a.Rounds != b.Rounds || a.Turns != b.Turns {
		t.Fatalf("Expected identical runs, got %d/%d and %d/%d rounds/turns", a.Rounds, a.Turns, b.Rounds, b.Turns)
	}
	for i := range a.Scores {
		if a.Scores[i].Player.Name != b.Scores[i].Player.Name || a.Scores[i].Points != b.Scores[i].Points {
			t.Errorf("Seat %d: expected identical scores, got %d and %d", i, a.Scores[i].Points, b.Scores[i].Points)
		}
	}
}

func TestRun_RoundLimit(t *testing.T) {
	r, err := New(beginnerBoard(t), options(4, 1, 3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Winner != nil {
		t.Errorf("Expected no winner after one round, got %s", res.Winner.Name)
	}
	if res.Rounds != 1 || res.Turns != 4 {
		t.Errorf("Expected 1 round of 4 turns, got %d rounds and %d turns", res.Rounds, res.Turns)
	}
}

func TestRun_Cancelled(t *testing.T) {
	r, err := New(beginnerBoard(t), options(2, 100, 5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if res == nil || res.Turns != 0 {
		t.Fatalf("Expected a partial result with no turns, got %+v", res)
	}
	for _, id := range r.Game().PlayerOrder {
		if n := len(r.Game().Board.Buildings(id)); n != 2 {
			t.Errorf("Expected setup to finish with 2 settlements each, got %d", n)
		}
	}
}

func TestRun_Events(t *testing.T) {
	var events []Event
	opts := options(3, 2, 9)
	opts.OnEvent = func(e Event) { events = append(events, e) }

	r, err := New(beginnerBoard(t), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	counts := map[string]int{}
	for _, e := range events {
		counts[e.Type]++
	}
	if counts[EventSetup] != 6 {
		t.Errorf("Expected 6 setup events, got %d", counts[EventSetup])
	}
	if counts[EventRoundStart] != 2 {
		t.Errorf("Expected 2 round starts, got %d", counts[EventRoundStart])
	}
	if counts[EventRoll] != 6 {
		t.Errorf("Expected one roll per turn, got %d", counts[EventRoll])
	}
	if last := events[len(events)-1]; last.Type != EventGameEnd || last.Player != nil {
		t.Errorf("Expected a game end event without a winner last, got %+v", last)
	}
	if events[0].Phase != game.PhaseSetup || events[0].Player == nil {
		t.Errorf("Expected the first event to be a setup placement, got %+v", events[0])
	}
}

func TestTakeTurn_KnightWinsBeforeRobber(t *testing.T) {
	opts := options(4, 10, 11)
	opts.Settings = game.Settings{VictoryPoints: 4, LongestRoadMin: 5, LargestArmyMin: 1}
	r, err := New(beginnerBoard(t), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}

	g := r.Game()
	p := g.GetCurrentPlayer()
	robberBefore := g.Board.Robber()
	moved := false
	for _, tc := range g.Board.TilesAroundIntersection(g.Board.Buildings(p.ID)[0].Coords) {
		if _, ok := g.Board.Tile(tc); ok && tc != robberBefore {
			if err := g.Board.MoveRobber(tc); err != nil {
				t.Fatalf("MoveRobber: %v", err)
			}
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("Expected a tile next to the first settlement")
	}
	p.Cards[game.CardKnight] = 1
	if !r.knightFirst(p) {
		t.Fatal("Expected the knight to be played before rolling")
	}

	robber := g.Board.Robber()
	if err := r.takeTurn(); err != nil {
		t.Fatalf("Expected the winning knight to end the turn cleanly, got %v", err)
	}
	if !g.IsGameOver() || g.WinnerID != p.ID {
		t.Errorf("Expected %s to win with largest army, winner %q", p.Name, g.WinnerID)
	}
	if g.Board.Robber() != robber {
		t.Errorf("Expected the robber to stay at %s once the game ended, got %s", robber, g.Board.Robber())
	}
	if g.LastRoll != 0 {
		t.Errorf("Expected no roll after the game ended, got %d", g.LastRoll)
	}
}
