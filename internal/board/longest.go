package board

import "slices"

// roadBranch is a partial walk along one player's roads. lead is the
// intersection the walk would continue from.
type roadBranch struct {
	lead Coords
	used []PathKey
}

// LongestRoad returns the number of roads in the longest walk through
// playerID's road network that never reuses a road. A walk may end at an
// intersection holding another player's building but cannot pass through it.
// A player without roads has length 0.
func (b *Board) LongestRoad(playerID string) int {
	var work []roadBranch
	for _, k := range b.PathKeys() {
		if !b.paths[k].OwnedBy(playerID) {
			continue
		}
		for _, end := range k {
			work = append(work, roadBranch{lead: end, used: []PathKey{k}})
		}
	}
	if len(work) == 0 {
		return 0
	}

	longest := 1
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		if b.intersections[cur.lead].blocks(playerID) {
			continue
		}
		for _, k := range b.PathsAt(cur.lead) {
			if !b.paths[k].OwnedBy(playerID) || slices.Contains(cur.used, k) {
				continue
			}
			used := make([]PathKey, len(cur.used)+1)
			copy(used, cur.used)
			used[len(cur.used)] = k
			work = append(work, roadBranch{lead: k.Other(cur.lead), used: used})
			if len(used) > longest {
				longest = len(used)
			}
		}
	}
	return longest
}
