package sim

import (
	"slices"

	"catan-engine/internal/board"
	"catan-engine/internal/game"
)

// pips returns how many of the 36 two-dice outcomes roll n.
func pips(n int) int {
	if n < 2 || n > 12 || n == game.RobberRoll {
		return 0
	}
	if n < 7 {
		return n - 1
	}
	return 13 - n
}

// intersectionScore rates an intersection by the dice odds of its tiles.
func intersectionScore(b *board.Board, c board.Coords) int {
	score := 0
	for _, tc := range b.TilesAroundIntersection(c) {
		if tile, ok := b.Tile(tc); ok {
			score += pips(tile.Token)
		}
	}
	return score
}

// bestIntersection returns the highest scoring coordinate. Ties go to the
// earliest in cs.
func bestIntersection(b *board.Board, cs []board.Coords) (board.Coords, bool) {
	if len(cs) == 0 {
		return board.Coords{}, false
	}
	best, bestScore := cs[0], intersectionScore(b, cs[0])
	for _, c := range cs[1:] {
		if s := intersectionScore(b, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, true
}

// pickRoad prefers a road that opens up a settlement spot, then the one
// whose far end scores best.
func pickRoad(b *board.Board, playerID string, roads []board.PathKey) (board.PathKey, bool) {
	if len(roads) == 0 {
		return board.PathKey{}, false
	}
	best, bestScore := roads[0], -1
	for _, k := range roads {
		score := 0
		for _, c := range k {
			if b.IsValidSettlementCoords(playerID, c, false) {
				score = max(score, 100+intersectionScore(b, c))
			} else {
				score = max(score, intersectionScore(b, c))
			}
		}
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	return best, true
}

// pickRobberTile returns the tile that blocks the most opposing buildings
// without touching the player's own. Falls back to any other tile.
func pickRobberTile(b *board.Board, playerID string) (board.Coords, bool) {
	var fallback *board.Coords
	var best board.Coords
	bestScore := 0

	for _, t := range b.Tiles() {
		if t.Coords == b.Robber() {
			continue
		}
		if fallback == nil {
			c := t.Coords
			fallback = &c
		}
		score := 0
		own := false
		for _, c := range b.IntersectionsAroundTile(t.Coords) {
			bld, ok := b.BuildingAt(c)
			if !ok {
				continue
			}
			if bld.Owner == playerID {
				own = true
				break
			}
			score += bld.Type.YieldAmount() * pips(t.Token)
		}
		if !own && score > bestScore {
			best, bestScore = t.Coords, score
		}
	}

	if bestScore > 0 {
		return best, true
	}
	if fallback != nil {
		return *fallback, true
	}
	return board.Coords{}, false
}

// pickVictim returns the victim holding the most cards, earliest seat first
// on ties, or "" if nobody holds any.
func pickVictim(g *game.GameState, victims []string) string {
	best, most := "", 0
	for _, id := range g.PlayerOrder {
		if !slices.Contains(victims, id) {
			continue
		}
		if n := g.Players[id].Hand.Total(); n > most {
			best, most = id, n
		}
	}
	return best
}

// missing returns what the player still needs for cost.
func missing(p *game.Player, cost game.Hand) game.Hand {
	need := game.NewHand()
	for r, n := range cost {
		if short := n - p.Hand.Get(r); short > 0 {
			need[r] = short
		}
	}
	return need
}

// pickTrade returns the cheapest offer that brings in something from need
// without giving away anything cost still requires.
func pickTrade(p *game.Player, cost, need game.Hand) (game.TradeOffer, bool) {
	var best game.TradeOffer
	found := false
	for _, o := range p.PossibleTrades() {
		if need.Get(o.Receive) == 0 {
			continue
		}
		if p.Hand.Get(o.Give)-o.GiveAmount < cost.Get(o.Give) {
			continue
		}
		if !found || o.GiveAmount < best.GiveAmount {
			best, found = o, true
		}
	}
	return best, found
}

// mostHeldResource returns the resource the other players hold the most of.
func mostHeldResource(g *game.GameState, playerID string) board.Resource {
	totals := game.NewHand()
	for _, id := range g.PlayerOrder {
		if id == playerID {
			continue
		}
		totals.Add(g.Players[id].Hand)
	}
	best, most := board.ResourceOre, -1
	for _, r := range board.AllResources() {
		if n := totals.Get(r); n > most {
			best, most = r, n
		}
	}
	return best
}

// plentyPicks returns two resources for a year of plenty card, taken from
// what the player lacks for target.
func plentyPicks(p *game.Player, target game.Hand) []board.Resource {
	var picks []board.Resource
	need := missing(p, target)
	for _, r := range board.AllResources() {
		for i := 0; i < need.Get(r) && len(picks) < 2; i++ {
			picks = append(picks, r)
		}
	}
	for len(picks) < 2 {
		picks = append(picks, board.ResourceOre)
	}
	return picks
}
