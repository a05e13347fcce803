package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
)

// Player count limits
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// NewGame creates a game on b with players seated in the given order. All
// randomness (dice, the development deck, stolen cards) comes from rng so a
// seeded source replays the same game.
func NewGame(b *board.Board, players []*Player, settings Settings, rng *rand.Rand) (*GameState, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: no board", ErrInvalidAction)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidAction)
	}
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("need at least %d players", MinPlayers)
	}
	if len(players) > MaxPlayers {
		return nil, fmt.Errorf("max %d players", MaxPlayers)
	}

	state := &GameState{
		ID:       uuid.New().String(),
		Settings: settings,
		Board:    b,
		Round:    0,
		Phase:    PhaseSetup,
		Players:  make(map[string]*Player, len(players)),
		rng:      rng,
	}

	state.PlayerOrder = make([]string, len(players))
	for i, p := range players {
		if _, dup := state.Players[p.ID]; dup {
			return nil, fmt.Errorf("duplicate player %s", p.ID)
		}
		state.Players[p.ID] = p
		state.PlayerOrder[i] = p.ID
	}
	state.CurrentPlayerID = state.PlayerOrder[0]

	state.deck = newDeck()
	shuffleDeck(state.deck, rng)

	log.Debug().
		Str("game", state.ID).
		Int("players", len(players)).
		Int("deck", len(state.deck)).
		Msg("game created")
	return state, nil
}

// shuffleDeck randomizes the deck in place.
func shuffleDeck(deck []DevelopmentCard, rng *rand.Rand) {
	// Fisher-Yates shuffle
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// DeckSize returns the number of development cards left to draw.
func (g *GameState) DeckSize() int {
	return len(g.deck)
}
