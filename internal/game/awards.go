package game

import "github.com/rs/zerolog/log"

// updateLongestRoad re-evaluates the longest road award from every player's
// current road length. The holder keeps it while tied for the longest; a
// single player strictly longer takes it. When the holder falls behind and
// the longest is shared, or nobody reaches the minimum, the award is set
// aside.
func (g *GameState) updateLongestRoad() {
	best := 0
	var leaders []string
	for _, id := range g.PlayerOrder {
		n := g.Board.LongestRoad(id)
		switch {
		case n > best:
			best = n
			leaders = []string{id}
		case n == best:
			leaders = append(leaders, id)
		}
	}

	owner := g.LongestRoadOwner
	switch {
	case best < g.Settings.LongestRoadMin:
		owner = ""
	case contains(leaders, owner):
	case len(leaders) == 1:
		owner = leaders[0]
	default:
		owner = ""
	}

	if owner != g.LongestRoadOwner {
		log.Debug().
			Str("from", g.LongestRoadOwner).
			Str("to", owner).
			Int("length", best).
			Msg("longest road changed hands")
		g.LongestRoadOwner = owner
	}
}

// updateLargestArmy gives the award to player if they have played enough
// knights and strictly more than the holder.
func (g *GameState) updateLargestArmy(player *Player) {
	if player.KnightsPlayed < g.Settings.LargestArmyMin || g.LargestArmyOwner == player.ID {
		return
	}
	if holder, ok := g.Players[g.LargestArmyOwner]; ok && holder.KnightsPlayed >= player.KnightsPlayed {
		return
	}
	log.Debug().
		Str("from", g.LargestArmyOwner).
		Str("to", player.ID).
		Int("knights", player.KnightsPlayed).
		Msg("largest army changed hands")
	g.LargestArmyOwner = player.ID
}

// LongestRoadLength returns the length of the player's longest road.
func (g *GameState) LongestRoadLength(playerID string) int {
	return g.Board.LongestRoad(playerID)
}

func contains(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
