package game

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"catan-engine/internal/board"
)

// PlayerColor represents a player's color.
type PlayerColor string

const (
	ColorRed    PlayerColor = "red"
	ColorBlue   PlayerColor = "blue"
	ColorWhite  PlayerColor = "white"
	ColorOrange PlayerColor = "orange"
	ColorGreen  PlayerColor = "green"
	ColorBrown  PlayerColor = "brown"
)

// AllColors returns all available player colors.
func AllColors() []PlayerColor {
	return []PlayerColor{
		ColorRed,
		ColorBlue,
		ColorWhite,
		ColorOrange,
		ColorGreen,
		ColorBrown,
	}
}

// Player represents a player in the game. It satisfies board.Owner so the
// board can attach harbors as settlements are placed.
type Player struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Color         PlayerColor             `json:"color"`
	Hand          Hand                    `json:"hand"`
	Cards         map[DevelopmentCard]int `json:"cards"`
	KnightsPlayed int                     `json:"knightsPlayed"`
	FreeRoads     int                     `json:"freeRoads,omitempty"`

	harbors mapset.Set[board.Harbor]
}

// NewPlayer creates a new player with a fresh ID.
func NewPlayer(name string, color PlayerColor) *Player {
	return &Player{
		ID:      uuid.New().String(),
		Name:    name,
		Color:   color,
		Hand:    NewHand(),
		Cards:   make(map[DevelopmentCard]int),
		harbors: mapset.New[board.Harbor](),
	}
}

// PlayerID returns the player's ID.
func (p *Player) PlayerID() string {
	return p.ID
}

// ConnectHarbor records that the player has a building on h.
func (p *Player) ConnectHarbor(h board.Harbor) {
	p.harbors.Put(h)
}

// HasHarbor returns true if the player is connected to h.
func (p *Player) HasHarbor(h board.Harbor) bool {
	return p.harbors.Has(h)
}

// Harbors returns the connected harbors sorted by path.
func (p *Player) Harbors() []board.Harbor {
	var out []board.Harbor
	p.harbors.Each(func(h board.Harbor) {
		out = append(out, h)
	})
	board.SortHarbors(out)
	return out
}

// HasResources returns true if the player can cover cost.
func (p *Player) HasResources(cost Hand) bool {
	return p.Hand.Has(cost)
}

// RemoveResources takes cost from the player's hand.
func (p *Player) RemoveResources(cost Hand) error {
	return p.Hand.Remove(cost)
}

// AddResources gives the player every amount in h.
func (p *Player) AddResources(h Hand) {
	p.Hand.Add(h)
}

// CardCount returns the number of development cards in the player's hand.
func (p *Player) CardCount() int {
	n := 0
	for _, c := range p.Cards {
		n += c
	}
	return n
}
