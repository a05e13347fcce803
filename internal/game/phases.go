package game

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
)

// RobberRoll is the dice total that moves the robber instead of producing.
const RobberRoll = 7

// RollDice rolls two dice for the current player. A seven sends the game to
// the robber phase; anything else pays out the board's yield.
func (g *GameState) RollDice(playerID string) (int, error) {
	player, err := g.turnPlayer(playerID, PhaseRoll)
	if err != nil {
		return 0, err
	}

	roll := g.rng.Intn(6) + g.rng.Intn(6) + 2
	g.LastRoll = roll

	log.Debug().
		Str("player", player.Name).
		Int("roll", roll).
		Msg("dice rolled")

	if roll == RobberRoll {
		g.afterRobber = PhaseActions
		g.Phase = PhaseRobber
		return roll, nil
	}
	g.DistributeYield(roll)
	g.Phase = PhaseActions
	return roll, nil
}

// DistributeYield adds the board's yield for roll to each player's hand and
// returns it.
func (g *GameState) DistributeYield(roll int) map[string]*board.RollYield {
	yields := g.Board.YieldForRoll(roll)
	for id, y := range yields {
		player, ok := g.Players[id]
		if !ok {
			continue
		}
		player.AddResources(Hand(y.Total))
		log.Debug().
			Str("player", player.Name).
			Int("roll", roll).
			Stringer("gained", Hand(y.Total)).
			Msg("yield")
	}
	return yields
}

// MoveRobber moves the robber to the tile at c on behalf of the current
// player and returns the other players with buildings on that tile. Any of
// them may then be robbed with StealResource.
func (g *GameState) MoveRobber(playerID string, c board.Coords) ([]string, error) {
	player, err := g.turnPlayer(playerID, PhaseRobber)
	if err != nil {
		return nil, err
	}
	if c == g.Board.Robber() {
		return nil, fmt.Errorf("%w: robber is already at %s", ErrInvalidAction, c)
	}
	if err := g.Board.MoveRobber(c); err != nil {
		return nil, err
	}

	victims := slices.DeleteFunc(g.Board.PlayersOnTile(c), func(id string) bool {
		return id == playerID
	})
	g.robberVictims = victims
	g.Phase = g.afterRobber

	log.Debug().
		Str("player", player.Name).
		Stringer("to", c).
		Strs("victims", victims).
		Msg("robber moved")
	return victims, nil
}

// StealResource takes one random card from victimID for the current player.
// The robber must already have moved and the victim must be next to its new
// tile. A victim
// with an empty hand yields ResourceNone.
func (g *GameState) StealResource(playerID, victimID string) (board.Resource, error) {
	player, err := g.GetPlayer(playerID)
	if err != nil {
		return board.ResourceNone, err
	}
	victim, err := g.GetPlayer(victimID)
	if err != nil {
		return board.ResourceNone, err
	}
	if g.Phase == PhaseOver {
		return board.ResourceNone, ErrGameOver
	}
	if g.CurrentPlayerID != playerID {
		return board.ResourceNone, ErrNotYourTurn
	}
	if g.Phase != PhaseRoll && g.Phase != PhaseActions {
		return board.ResourceNone, fmt.Errorf("%w: cannot steal in %s phase", ErrInvalidAction, g.Phase)
	}
	if !slices.Contains(g.robberVictims, victimID) {
		return board.ResourceNone, fmt.Errorf("%w: %s is not next to the robber", ErrInvalidAction, victim.Name)
	}
	g.robberVictims = nil

	r, ok := victim.Hand.Random(g.rng)
	if !ok {
		return board.ResourceNone, nil
	}
	_ = victim.RemoveResources(Hand{r: 1})
	player.AddResources(Hand{r: 1})

	log.Debug().
		Str("player", player.Name).
		Str("victim", victim.Name).
		Stringer("resource", r).
		Msg("resource stolen")
	return r, nil
}

// EndTurn passes play to the next seat. A new round starts when play wraps
// back to the first seat.
func (g *GameState) EndTurn(playerID string) error {
	if _, err := g.actingPlayer(playerID); err != nil {
		return err
	}
	g.robberVictims = nil
	g.advancePlayerTurn()
	g.Phase = PhaseRoll
	return nil
}

// advancePlayerTurn moves to the next player in the order.
func (g *GameState) advancePlayerTurn() {
	for i, pid := range g.PlayerOrder {
		if pid == g.CurrentPlayerID {
			next := (i + 1) % len(g.PlayerOrder)
			if next == 0 {
				g.Round++
				log.Debug().Str("game", g.ID).Int("round", g.Round).Msg("new round")
			}
			g.CurrentPlayerID = g.PlayerOrder[next]
			return
		}
	}
}
