// Package game contains the turn and resource rules layered on top of the
// board: hands, build costs, development cards, awards, trades and the setup
// and turn order.
package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
)

// GameState represents the complete state of a game.
type GameState struct {
	ID               string             `json:"id"`
	Settings         Settings           `json:"settings"`
	Board            *board.Board       `json:"-"`
	Round            int                `json:"round"`
	Phase            Phase              `json:"phase"`
	CurrentPlayerID  string             `json:"currentPlayerId"`
	PlayerOrder      []string           `json:"playerOrder"`
	Players          map[string]*Player `json:"players"`
	LongestRoadOwner string             `json:"longestRoadOwner,omitempty"`
	LargestArmyOwner string             `json:"largestArmyOwner,omitempty"`
	LastRoll         int                `json:"lastRoll,omitempty"`
	WinnerID         string             `json:"winnerId,omitempty"`

	deck        []DevelopmentCard
	rng         *rand.Rand
	setup       setupState
	afterRobber Phase

	robberVictims []string
}

// Settings contains the configurable game parameters.
type Settings struct {
	VictoryPoints  int `json:"victoryPoints"`
	LongestRoadMin int `json:"longestRoadMin"`
	LargestArmyMin int `json:"largestArmyMin"`
}

// DefaultSettings returns the standard rules.
func DefaultSettings() Settings {
	return Settings{
		VictoryPoints:  10,
		LongestRoadMin: 5,
		LargestArmyMin: 3,
	}
}

// Phase represents where the current turn is.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRoll
	PhaseRobber
	PhaseActions
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRoll:
		return "Roll"
	case PhaseRobber:
		return "Robber"
	case PhaseActions:
		return "Actions"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GetPlayer returns the player with the given ID.
func (g *GameState) GetPlayer(playerID string) (*Player, error) {
	p, ok := g.Players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	return p, nil
}

// GetCurrentPlayer returns the player whose turn it is.
func (g *GameState) GetCurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerID]
}

// actingPlayer returns the player if they may act in the actions phase.
func (g *GameState) actingPlayer(playerID string) (*Player, error) {
	return g.turnPlayer(playerID, PhaseActions)
}

// turnPlayer returns the player if it is their turn and the game is in phase.
func (g *GameState) turnPlayer(playerID string, phase Phase) (*Player, error) {
	player, err := g.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if g.Phase == PhaseOver {
		return nil, ErrGameOver
	}
	if g.CurrentPlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.Phase != phase {
		return nil, fmt.Errorf("%w: %s phase, need %s", ErrInvalidAction, g.Phase, phase)
	}
	return player, nil
}

// VictoryPoints returns the player's score: one per settlement, two per city,
// two for each award held and one per victory point card.
func (g *GameState) VictoryPoints(playerID string) int {
	player, ok := g.Players[playerID]
	if !ok {
		return 0
	}
	points := 0
	for _, b := range g.Board.Buildings(playerID) {
		points += b.Type.VictoryPoints()
	}
	if g.LongestRoadOwner == playerID {
		points += 2
	}
	if g.LargestArmyOwner == playerID {
		points += 2
	}
	return points + player.Cards[CardVictoryPoint]
}

// Winner returns the first player in turn order at or above the target
// score, or nil.
func (g *GameState) Winner() *Player {
	for _, id := range g.PlayerOrder {
		if g.VictoryPoints(id) >= g.Settings.VictoryPoints {
			return g.Players[id]
		}
	}
	return nil
}

// IsGameOver checks if the game has ended.
func (g *GameState) IsGameOver() bool {
	return g.Phase == PhaseOver
}

// checkVictory ends the game once somebody reaches the target score.
func (g *GameState) checkVictory() {
	if g.Phase == PhaseSetup || g.Phase == PhaseOver {
		return
	}
	if w := g.Winner(); w != nil {
		g.WinnerID = w.ID
		g.Phase = PhaseOver
		log.Info().
			Str("game", g.ID).
			Str("winner", w.Name).
			Int("points", g.VictoryPoints(w.ID)).
			Int("round", g.Round).
			Msg("game over")
	}
}
