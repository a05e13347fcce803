package game

import (
	"errors"
	"math/rand"
	"testing"

	"catan-engine/internal/board"
)

func TestRollDice_Phases(t *testing.T) {
	g, players := newTestGame(t, 2)
	p := players[0]
	g.rng = rand.New(rand.NewSource(11))

	sawSeven, sawOther := false, false
	for i := 0; i < 200; i++ {
		g.Phase = PhaseRoll
		g.CurrentPlayerID = p.ID
		roll, err := g.RollDice(p.ID)
		if err != nil {
			t.Fatalf("RollDice: %v", err)
		}
		if roll < 2 || roll > 12 {
			t.Fatalf("Roll %d out of range", roll)
		}
		if g.LastRoll != roll {
			t.Errorf("Expected LastRoll %d, got %d", roll, g.LastRoll)
		}
		if roll == RobberRoll {
			sawSeven = true
			if g.Phase != PhaseRobber {
				t.Errorf("Expected robber phase after a 7, got %s", g.Phase)
			}
		} else {
			sawOther = true
			if g.Phase != PhaseActions {
				t.Errorf("Expected actions phase after %d, got %s", roll, g.Phase)
			}
		}
	}
	if !sawSeven || !sawOther {
		t.Error("Expected both sevens and other rolls over 200 throws")
	}
}

func TestRollDice_WrongPhase(t *testing.T) {
	g, players := newTestGame(t, 2)
	act(g, players[0])
	if _, err := g.RollDice(players[0].ID); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected ErrInvalidAction rolling twice, got %v", err)
	}
	g.Phase = PhaseOver
	if _, err := g.RollDice(players[0].ID); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
}

func TestDistributeYield(t *testing.T) {
	g, players := newTestGame(t, 2)
	a, b := players[0], players[1]
	buildFreeSettlement(t, g, a, board.C(1, 0))
	buildFreeSettlement(t, g, b, board.C(2, -2))
	act(g, b)
	if err := g.UpgradeToCity(b.ID, board.C(2, -2), false); err != nil {
		t.Fatalf("UpgradeToCity: %v", err)
	}

	yields := g.DistributeYield(6)
	if len(yields) != 1 || a.Hand.Get(board.ResourceLumber) != 1 || a.Hand.Total() != 1 {
		t.Errorf("Expected 1 lumber for a on 6, got %s", a.Hand)
	}

	g.DistributeYield(8)
	if a.Hand.Get(board.ResourceBrick) != 1 {
		t.Errorf("Expected 1 brick for a on 8, got %s", a.Hand)
	}
	if b.Hand.Get(board.ResourceBrick) != 2 {
		t.Errorf("Expected 2 brick for b's city on 8, got %s", b.Hand)
	}

	// Nothing is built next to the 9
	if yields := g.DistributeYield(9); len(yields) != 0 {
		t.Errorf("Expected no yield on 9, got %v", yields)
	}
}

func TestMoveRobberAndSteal(t *testing.T) {
	g, players := newTestGame(t, 3)
	a, b, c := players[0], players[1], players[2]
	buildFreeSettlement(t, g, a, board.C(1, 0))
	buildFreeSettlement(t, g, b, board.C(2, -2))
	buildFreeSettlement(t, g, c, board.C(0, 2))
	b.AddResources(Hand{board.ResourceOre: 2})

	g.Phase = PhaseRobber
	g.afterRobber = PhaseActions
	g.CurrentPlayerID = a.ID

	if _, err := g.MoveRobber(a.ID, g.Board.Robber()); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected ErrInvalidAction leaving the robber in place, got %v", err)
	}
	if _, err := g.MoveRobber(a.ID, board.C(5, 5)); !errors.Is(err, board.ErrInvalidCoords) {
		t.Errorf("Expected ErrInvalidCoords off the board, got %v", err)
	}

	// (2,-1) touches a's (1,0) and b's (2,-2)
	victims, err := g.MoveRobber(a.ID, board.C(2, -1))
	if err != nil {
		t.Fatalf("MoveRobber: %v", err)
	}
	if len(victims) != 1 || victims[0] != b.ID {
		t.Fatalf("Expected only b as a victim, got %v", victims)
	}
	if g.Phase != PhaseActions {
		t.Errorf("Expected actions phase after the robber, got %s", g.Phase)
	}

	if _, err := g.StealResource(a.ID, c.ID); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected ErrInvalidAction robbing a player away from the robber, got %v", err)
	}
	r, err := g.StealResource(a.ID, b.ID)
	if err != nil {
		t.Fatalf("StealResource: %v", err)
	}
	if r != board.ResourceOre || a.Hand.Get(board.ResourceOre) != 1 || b.Hand.Get(board.ResourceOre) != 1 {
		t.Errorf("Expected one ore to move from b to a, got %s and %s", a.Hand, b.Hand)
	}
	if _, err := g.StealResource(a.ID, b.ID); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected only one steal per robber move, got %v", err)
	}
}

func TestStealResource_PhaseGuards(t *testing.T) {
	g, players := newTestGame(t, 2)
	a, b := players[0], players[1]
	buildFreeSettlement(t, g, a, board.C(1, 0))
	buildFreeSettlement(t, g, b, board.C(2, -2))
	b.AddResources(Hand{board.ResourceGrain: 1})

	// Victims left over from an earlier move do not allow a steal before the
	// robber moves again
	g.CurrentPlayerID = a.ID
	g.robberVictims = []string{b.ID}
	g.Phase = PhaseRobber
	if _, err := g.StealResource(a.ID, b.ID); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected ErrInvalidAction in the robber phase, got %v", err)
	}
	g.Phase = PhaseSetup
	if _, err := g.StealResource(a.ID, b.ID); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Expected ErrInvalidAction during setup, got %v", err)
	}
	g.Phase = PhaseOver
	if _, err := g.StealResource(a.ID, b.ID); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	if b.Hand.Get(board.ResourceGrain) != 1 {
		t.Errorf("Expected b to keep the grain, got %s", b.Hand)
	}

	// A knight before the roll leaves the game in the roll phase
	g.Phase = PhaseRoll
	r, err := g.StealResource(a.ID, b.ID)
	if err != nil {
		t.Fatalf("StealResource before rolling: %v", err)
	}
	if r != board.ResourceGrain || a.Hand.Get(board.ResourceGrain) != 1 {
		t.Errorf("Expected a to take the grain, got %s", a.Hand)
	}
}

func TestEndTurn(t *testing.T) {
	g, players := newTestGame(t, 3)
	g.Round = 1
	act(g, players[0])

	if err := g.EndTurn(players[1].ID); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn, got %v", err)
	}

	for i := 1; i <= 3; i++ {
		current := g.CurrentPlayerID
		g.Phase = PhaseActions
		if err := g.EndTurn(current); err != nil {
			t.Fatalf("EndTurn: %v", err)
		}
		want := players[i%3].ID
		if g.CurrentPlayerID != want {
			t.Errorf("Expected %s next, got %s", want, g.CurrentPlayerID)
		}
		if g.Phase != PhaseRoll {
			t.Errorf("Expected roll phase, got %s", g.Phase)
		}
	}
	if g.Round != 2 {
		t.Errorf("Expected round 2 after a full rotation, got %d", g.Round)
	}
}
