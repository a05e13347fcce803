package board

// YieldSource is one building's take from one tile on a roll.
type YieldSource struct {
	Resource Resource
	Amount   int
	Building IntersectionBuilding
	Tile     Tile
}

// RollYield is what one player collects on a roll. Total holds only the
// resources actually received; Sources explains where each unit came from.
type RollYield struct {
	Total   map[Resource]int
	Sources []YieldSource
}

func newRollYield() *RollYield {
	return &RollYield{Total: make(map[Resource]int)}
}

func (y *RollYield) add(src YieldSource) {
	y.Total[src.Resource] += src.Amount
	y.Sources = append(y.Sources, src)
}

// Count returns the total number of resources in the yield.
func (y *RollYield) Count() int {
	n := 0
	for _, amount := range y.Total {
		n += amount
	}
	return n
}

// YieldForRoll computes the resources each player collects when roll comes
// up, keyed by player ID. Tiles under the robber and deserts give nothing.
// Settlements collect one resource per tile and cities two. A roll nobody
// collects on returns an empty map.
func (b *Board) YieldForRoll(roll int) map[string]*RollYield {
	out := make(map[string]*RollYield)
	for _, c := range b.tileOrder {
		t := b.tiles[c]
		if t.Token != roll || c == b.robber {
			continue
		}
		resource := t.Type.Resource()
		if resource == ResourceNone {
			continue
		}
		for _, corner := range c.Neighbors() {
			building := b.intersections[corner].Building
			if building == nil {
				continue
			}
			y, ok := out[building.Owner]
			if !ok {
				y = newRollYield()
				out[building.Owner] = y
			}
			y.add(YieldSource{
				Resource: resource,
				Amount:   building.Type.YieldAmount(),
				Building: *building,
				Tile:     t,
			})
		}
	}
	return out
}
