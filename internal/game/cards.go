package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
)

// DevelopmentCard is a card bought from the development deck.
type DevelopmentCard int

const (
	CardKnight DevelopmentCard = iota
	CardYearOfPlenty
	CardRoadBuilding
	CardMonopoly
	CardVictoryPoint
)

// AllDevelopmentCards returns every card kind in a fixed order.
func AllDevelopmentCards() []DevelopmentCard {
	return []DevelopmentCard{CardKnight, CardYearOfPlenty, CardRoadBuilding, CardMonopoly, CardVictoryPoint}
}

// String returns the card name.
func (c DevelopmentCard) String() string {
	switch c {
	case CardKnight:
		return "Knight"
	case CardYearOfPlenty:
		return "Year of Plenty"
	case CardRoadBuilding:
		return "Road Building"
	case CardMonopoly:
		return "Monopoly"
	case CardVictoryPoint:
		return "Victory Point"
	default:
		return "Unknown"
	}
}

// deckCounts is how many of each card the deck starts with.
var deckCounts = map[DevelopmentCard]int{
	CardKnight:       14,
	CardVictoryPoint: 5,
	CardRoadBuilding: 2,
	CardYearOfPlenty: 2,
	CardMonopoly:     2,
}

// newDeck returns the unshuffled development deck.
func newDeck() []DevelopmentCard {
	var deck []DevelopmentCard
	for _, c := range AllDevelopmentCards() {
		for i := 0; i < deckCounts[c]; i++ {
			deck = append(deck, c)
		}
	}
	return deck
}

// freeRoadsPerCard is how many roads a road building card pays for.
const freeRoadsPerCard = 2

// BuildDevelopmentCard buys the top card of the deck for the current player.
func (g *GameState) BuildDevelopmentCard(playerID string) (DevelopmentCard, error) {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return 0, err
	}
	if len(g.deck) == 0 {
		return 0, ErrNoDevelopmentCards
	}
	if err := player.RemoveResources(GetBuildCost(BuildDevelopmentCard)); err != nil {
		return 0, err
	}

	card := g.deck[0]
	g.deck = g.deck[1:]
	player.Cards[card]++

	log.Debug().
		Str("player", player.Name).
		Stringer("card", card).
		Int("remaining", len(g.deck)).
		Msg("development card drawn")

	// Victory point cards count as soon as they are held
	if card == CardVictoryPoint {
		g.checkVictory()
	}
	return card, nil
}

// PlayDevelopmentCard plays a card from the current player's hand. It may be
// played before or after rolling. picks names the resources a card needs:
// two for year of plenty, one for monopoly and none otherwise.
//
// A knight sends the game to the robber phase; call MoveRobber next. A road
// building card lets the player's next two roads be built for free. Victory
// point cards are never played.
func (g *GameState) PlayDevelopmentCard(playerID string, card DevelopmentCard, picks ...board.Resource) error {
	player, err := g.GetPlayer(playerID)
	if err != nil {
		return err
	}
	if g.Phase == PhaseOver {
		return ErrGameOver
	}
	if g.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}
	if g.Phase != PhaseRoll && g.Phase != PhaseActions {
		return fmt.Errorf("%w: cannot play cards in %s phase", ErrInvalidAction, g.Phase)
	}
	if player.Cards[card] < 1 {
		return fmt.Errorf("%w: %s", ErrCardNotHeld, card)
	}
	if err := validatePicks(card, picks); err != nil {
		return err
	}

	player.Cards[card]--
	if player.Cards[card] == 0 {
		delete(player.Cards, card)
	}

	switch card {
	case CardKnight:
		player.KnightsPlayed++
		g.updateLargestArmy(player)
		g.afterRobber = g.Phase
		g.Phase = PhaseRobber
	case CardRoadBuilding:
		player.FreeRoads += freeRoadsPerCard
	case CardYearOfPlenty:
		gain := NewHand()
		for _, r := range picks {
			gain[r]++
		}
		player.AddResources(gain)
	case CardMonopoly:
		taken := 0
		for _, id := range g.PlayerOrder {
			if id == playerID {
				continue
			}
			other := g.Players[id]
			n := other.Hand.Get(picks[0])
			if n == 0 {
				continue
			}
			_ = other.RemoveResources(Hand{picks[0]: n})
			taken += n
		}
		player.AddResources(Hand{picks[0]: taken})
	}

	log.Debug().
		Str("player", player.Name).
		Stringer("card", card).
		Msg("development card played")

	g.checkVictory()
	return nil
}

func validatePicks(card DevelopmentCard, picks []board.Resource) error {
	want := 0
	switch card {
	case CardVictoryPoint:
		return fmt.Errorf("%w: victory point cards are not played", ErrInvalidAction)
	case CardYearOfPlenty:
		want = 2
	case CardMonopoly:
		want = 1
	}
	if len(picks) != want {
		return fmt.Errorf("%w: %s takes %d resources, got %d", ErrInvalidAction, card, want, len(picks))
	}
	for _, r := range picks {
		if r < board.ResourceLumber || r > board.ResourceOre {
			return fmt.Errorf("%w: %s is not a resource", ErrInvalidAction, r)
		}
	}
	return nil
}
