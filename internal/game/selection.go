package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
)

// setupState tracks progress through the opening placements.
type setupState struct {
	step       int
	settlement *board.Coords
}

// SetupOrder returns the snake order of the opening placements: every player
// in seat order, then again in reverse.
func (g *GameState) SetupOrder() []string {
	n := len(g.PlayerOrder)
	order := make([]string, 0, 2*n)
	order = append(order, g.PlayerOrder...)
	for i := n - 1; i >= 0; i-- {
		order = append(order, g.PlayerOrder[i])
	}
	return order
}

// SetupSettlementPending returns true if the current player has placed a
// starting settlement and still owes its road.
func (g *GameState) SetupSettlementPending() bool {
	return g.setup.settlement != nil
}

// PlaceStartingSettlement places the current player's free opening
// settlement. It needs no road. A player's second starting settlement pays
// out one of each resource from the tiles around it.
func (g *GameState) PlaceStartingSettlement(playerID string, c board.Coords) error {
	player, err := g.turnPlayer(playerID, PhaseSetup)
	if err != nil {
		return err
	}
	if g.setup.settlement != nil {
		return fmt.Errorf("%w: place the road for %s first", ErrInvalidAction, *g.setup.settlement)
	}

	if err := g.Board.PlaceIntersectionBuilding(player, c, board.BuildingSettlement, false); err != nil {
		return err
	}
	g.setup.settlement = &c

	// Second time around
	if g.setup.step >= len(g.PlayerOrder) {
		player.AddResources(Hand(g.Board.ResourcesAroundIntersection(c)))
	}

	log.Debug().
		Str("player", player.Name).
		Stringer("at", c).
		Int("step", g.setup.step).
		Msg("starting settlement placed")
	return nil
}

// PlaceStartingRoad places the road that goes with the settlement just
// placed. The road must touch that settlement. After the last road the first
// round starts with the first seat.
func (g *GameState) PlaceStartingRoad(playerID string, path board.PathKey) error {
	player, err := g.turnPlayer(playerID, PhaseSetup)
	if err != nil {
		return err
	}
	if g.setup.settlement == nil {
		return fmt.Errorf("%w: place a settlement first", ErrInvalidAction)
	}
	if !path.Has(*g.setup.settlement) {
		return fmt.Errorf("%w: road must touch the settlement at %s", ErrInvalidAction, *g.setup.settlement)
	}

	if err := g.Board.PlacePathBuilding(player, board.BuildingRoad, path, true); err != nil {
		return err
	}

	log.Debug().
		Str("player", player.Name).
		Stringer("path", path).
		Int("step", g.setup.step).
		Msg("starting road placed")

	g.setup.settlement = nil
	g.setup.step++
	order := g.SetupOrder()
	if g.setup.step < len(order) {
		g.CurrentPlayerID = order[g.setup.step]
		return nil
	}
	g.startFirstRound()
	return nil
}

// startFirstRound transitions from setup to the first round.
func (g *GameState) startFirstRound() {
	g.Round = 1
	g.Phase = PhaseRoll
	g.CurrentPlayerID = g.PlayerOrder[0]
	log.Debug().Str("game", g.ID).Msg("setup complete")
}
