package game

import (
	"github.com/rs/zerolog/log"

	"catan-engine/internal/board"
)

// BuildType represents what can be built.
type BuildType string

const (
	BuildRoad            BuildType = "road"
	BuildSettlement      BuildType = "settlement"
	BuildCity            BuildType = "city"
	BuildDevelopmentCard BuildType = "development card"
)

// GetBuildCost returns the resources needed to build something.
func GetBuildCost(buildType BuildType) Hand {
	switch buildType {
	case BuildRoad:
		return Hand{board.ResourceBrick: 1, board.ResourceLumber: 1}
	case BuildSettlement:
		return Hand{board.ResourceBrick: 1, board.ResourceLumber: 1, board.ResourceWool: 1, board.ResourceGrain: 1}
	case BuildCity:
		return Hand{board.ResourceOre: 3, board.ResourceGrain: 2}
	case BuildDevelopmentCard:
		return Hand{board.ResourceWool: 1, board.ResourceGrain: 1, board.ResourceOre: 1}
	default:
		return nil
	}
}

// CanAfford returns true if the player can pay for buildType.
func (p *Player) CanAfford(buildType BuildType) bool {
	return p.HasResources(GetBuildCost(buildType))
}

// charge takes cost from the player when costResources is set and returns a
// func that gives it back.
func charge(player *Player, cost Hand, costResources bool) (refund func(), err error) {
	if !costResources {
		return func() {}, nil
	}
	if err := player.RemoveResources(cost); err != nil {
		return nil, err
	}
	return func() { player.AddResources(cost) }, nil
}

// BuildSettlement builds a settlement for the current player at c. With
// costResources the settlement cost is taken from the player's hand; with
// ensureConnected the settlement must sit on one of the player's roads. A
// rejected build leaves both the board and the hand unchanged.
func (g *GameState) BuildSettlement(playerID string, c board.Coords, costResources, ensureConnected bool) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	refund, err := charge(player, GetBuildCost(BuildSettlement), costResources)
	if err != nil {
		return err
	}
	if err := g.Board.PlaceIntersectionBuilding(player, c, board.BuildingSettlement, ensureConnected); err != nil {
		refund()
		return err
	}

	log.Debug().
		Str("player", player.Name).
		Stringer("at", c).
		Msg("settlement built")

	// A settlement can cut somebody's road in two
	g.updateLongestRoad()
	g.checkVictory()
	return nil
}

// BuildRoad builds a road for the current player on path. Roads granted by a
// road building card are used before the hand is charged.
func (g *GameState) BuildRoad(playerID string, path board.PathKey, costResources, ensureConnected bool) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}

	free := costResources && player.FreeRoads > 0
	refund, err := charge(player, GetBuildCost(BuildRoad), costResources && !free)
	if err != nil {
		return err
	}
	if err := g.Board.PlacePathBuilding(player, board.BuildingRoad, path, ensureConnected); err != nil {
		refund()
		return err
	}
	if free {
		player.FreeRoads--
	}

	log.Debug().
		Str("player", player.Name).
		Stringer("path", path).
		Bool("free", free).
		Msg("road built")

	g.updateLongestRoad()
	g.checkVictory()
	return nil
}

// UpgradeToCity replaces the current player's settlement at c with a city.
func (g *GameState) UpgradeToCity(playerID string, c board.Coords, costResources bool) error {
	player, err := g.actingPlayer(playerID)
	if err != nil {
		return err
	}
	refund, err := charge(player, GetBuildCost(BuildCity), costResources)
	if err != nil {
		return err
	}
	if err := g.Board.PlaceIntersectionBuilding(player, c, board.BuildingCity, false); err != nil {
		refund()
		return err
	}

	log.Debug().
		Str("player", player.Name).
		Stringer("at", c).
		Msg("city built")

	g.checkVictory()
	return nil
}
