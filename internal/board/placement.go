package board

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// PlaceIntersectionBuilding puts a settlement or city for owner at c.
// Every rule is checked before the board changes, so a returned error leaves
// the board untouched. On success the owner is connected to every harbor whose
// path ends at c.
func (b *Board) PlaceIntersectionBuilding(owner Owner, c Coords, kind BuildingType, ensureConnected bool) error {
	playerID := owner.PlayerID()
	switch kind {
	case BuildingSettlement:
		if err := b.AssertValidSettlementCoords(playerID, c, ensureConnected); err != nil {
			return err
		}
	case BuildingCity:
		if err := b.AssertValidCityCoords(playerID, c); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s on an intersection", ErrInvalidBuildingType, kind)
	}

	b.intersections[c].Building = &IntersectionBuilding{Owner: playerID, Type: kind, Coords: c}

	for _, h := range b.Harbors() {
		if h.Path.Has(c) && !owner.HasHarbor(h) {
			owner.ConnectHarbor(h)
		}
	}
	return nil
}

// PlacePathBuilding puts a road for owner on path.
// As with intersections, nothing changes unless every rule passes.
func (b *Board) PlacePathBuilding(owner Owner, kind BuildingType, path PathKey, ensureConnected bool) error {
	if kind != BuildingRoad {
		return fmt.Errorf("%w: %s on a path", ErrInvalidBuildingType, kind)
	}
	playerID := owner.PlayerID()
	if err := b.AssertValidRoadCoords(playerID, path, ensureConnected); err != nil {
		return err
	}
	key := NewPathKey(path[0], path[1])
	b.paths[key].Building = &PathBuilding{Owner: playerID, Type: kind, Path: key}
	return nil
}

// AssertValidSettlementCoords returns nil if playerID may build a settlement
// at c. Checks run in order: c is an intersection, it is empty, no connected
// intersection holds a building, and (if ensureConnected) one of the paths
// at c carries the player's road.
func (b *Board) AssertValidSettlementCoords(playerID string, c Coords, ensureConnected bool) error {
	i, ok := b.intersections[c]
	if !ok {
		return fmt.Errorf("%w: %s is not an intersection", ErrInvalidCoords, c)
	}
	if i.Building != nil {
		return fmt.Errorf("%w: %s already has a %s", ErrOccupied, c, i.Building.Type)
	}
	neighbors := b.ConnectedIntersections(c)
	for _, n := range neighbors {
		if b.intersections[n].Building != nil {
			return fmt.Errorf("%w: %s is next to a building at %s", ErrTooClose, c, n)
		}
	}
	if ensureConnected {
		for _, n := range neighbors {
			if b.paths[NewPathKey(c, n)].OwnedBy(playerID) {
				return nil
			}
		}
		return fmt.Errorf("%w: no road reaches %s", ErrNotConnected, c)
	}
	return nil
}

// AssertValidCityCoords returns nil if playerID has a settlement at c.
func (b *Board) AssertValidCityCoords(playerID string, c Coords) error {
	i, ok := b.intersections[c]
	if !ok {
		return fmt.Errorf("%w: %s is not an intersection", ErrInvalidCoords, c)
	}
	if !i.OwnedBy(playerID) || i.Building.Type != BuildingSettlement {
		return fmt.Errorf("%w: at %s", ErrRequiresSettlement, c)
	}
	return nil
}

// AssertValidRoadCoords returns nil if playerID may build a road on path.
// Both endpoints must be intersections, the path must exist and be empty. If
// ensureConnected, the road must touch the player's building at an endpoint,
// or another of the player's roads through an endpoint that no opponent
// occupies.
func (b *Board) AssertValidRoadCoords(playerID string, path PathKey, ensureConnected bool) error {
	for _, c := range path {
		if _, ok := b.intersections[c]; !ok {
			return fmt.Errorf("%w: %s is not an intersection", ErrInvalidCoords, c)
		}
	}
	key := NewPathKey(path[0], path[1])
	p, ok := b.paths[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, key)
	}
	if p.Building != nil {
		return fmt.Errorf("%w: %s already has a road", ErrOccupied, key)
	}
	if ensureConnected && !b.roadConnected(playerID, key) {
		return fmt.Errorf("%w: road on %s touches nothing the player owns", ErrNotConnected, key)
	}
	return nil
}

func (b *Board) roadConnected(playerID string, key PathKey) bool {
	for _, end := range key {
		i := b.intersections[end]
		if i.OwnedBy(playerID) {
			return true
		}
		// An opponent's building cuts the link between two road segments
		if i.blocks(playerID) {
			continue
		}
		for _, n := range b.ConnectedIntersections(end) {
			if b.paths[NewPathKey(end, n)].OwnedBy(playerID) {
				return true
			}
		}
	}
	return false
}

// IsValidSettlementCoords reports whether playerID may build a settlement at c.
func (b *Board) IsValidSettlementCoords(playerID string, c Coords, ensureConnected bool) bool {
	return b.AssertValidSettlementCoords(playerID, c, ensureConnected) == nil
}

// IsValidCityCoords reports whether playerID may upgrade the settlement at c.
func (b *Board) IsValidCityCoords(playerID string, c Coords) bool {
	return b.AssertValidCityCoords(playerID, c) == nil
}

// IsValidRoadCoords reports whether playerID may build a road on path.
func (b *Board) IsValidRoadCoords(playerID string, path PathKey, ensureConnected bool) bool {
	return b.AssertValidRoadCoords(playerID, path, ensureConnected) == nil
}

// ValidSettlementCoords returns every intersection where playerID may build a
// settlement.
func (b *Board) ValidSettlementCoords(playerID string, ensureConnected bool) mapset.Set[Coords] {
	out := mapset.New[Coords]()
	for c := range b.intersections {
		if b.IsValidSettlementCoords(playerID, c, ensureConnected) {
			out.Put(c)
		}
	}
	return out
}

// ValidCityCoords returns every intersection where playerID may build a city.
func (b *Board) ValidCityCoords(playerID string) mapset.Set[Coords] {
	out := mapset.New[Coords]()
	for c := range b.intersections {
		if b.IsValidCityCoords(playerID, c) {
			out.Put(c)
		}
	}
	return out
}

// ValidRoadCoords returns every path where playerID may build a road. If
// touching is not nil only paths ending at that intersection are returned.
func (b *Board) ValidRoadCoords(playerID string, ensureConnected bool, touching *Coords) mapset.Set[PathKey] {
	out := mapset.New[PathKey]()
	for k := range b.paths {
		if touching != nil && !k.Has(*touching) {
			continue
		}
		if b.IsValidRoadCoords(playerID, k, ensureConnected) {
			out.Put(k)
		}
	}
	return out
}
