package board

// BuildingType is the kind of a building.
type BuildingType int

const (
	BuildingRoad BuildingType = iota
	BuildingSettlement
	BuildingCity
)

// String returns the building name.
func (b BuildingType) String() string {
	switch b {
	case BuildingRoad:
		return "Road"
	case BuildingSettlement:
		return "Settlement"
	case BuildingCity:
		return "City"
	default:
		return "Unknown"
	}
}

// VictoryPoints returns the points the building is worth to its owner.
func (b BuildingType) VictoryPoints() int {
	switch b {
	case BuildingSettlement:
		return 1
	case BuildingCity:
		return 2
	default:
		return 0
	}
}

// YieldAmount returns how many resources the building collects per trigger.
func (b BuildingType) YieldAmount() int {
	switch b {
	case BuildingSettlement:
		return 1
	case BuildingCity:
		return 2
	default:
		return 0
	}
}

// Owner is the player side of a placement. The board stores only the ID; the
// harbor callback lets placement record harbor access on the player's ledger
// without the board owning players.
type Owner interface {
	PlayerID() string
	// ConnectHarbor records access to h. Adding a harbor already held is a no-op.
	ConnectHarbor(h Harbor)
	HasHarbor(h Harbor) bool
}

// IntersectionBuilding is a settlement or city.
type IntersectionBuilding struct {
	Owner  string       `json:"owner"`
	Type   BuildingType `json:"type"`
	Coords Coords       `json:"coords"`
}

// PathBuilding is a road.
type PathBuilding struct {
	Owner string       `json:"owner"`
	Type  BuildingType `json:"type"`
	Path  PathKey      `json:"path"`
}

// Intersection is a vertex of the board graph.
type Intersection struct {
	Coords   Coords                `json:"coords"`
	Building *IntersectionBuilding `json:"building,omitempty"`
}

// OwnedBy returns true if a building owned by playerID stands here.
func (i *Intersection) OwnedBy(playerID string) bool {
	return i.Building != nil && i.Building.Owner == playerID
}

// blocks returns true if a building of another player stands here.
func (i *Intersection) blocks(playerID string) bool {
	return i.Building != nil && i.Building.Owner != playerID
}

// Path is an edge of the board graph.
type Path struct {
	Key      PathKey       `json:"key"`
	Building *PathBuilding `json:"building,omitempty"`
}

// OwnedBy returns true if a road owned by playerID is on this path.
func (p *Path) OwnedBy(playerID string) bool {
	return p.Building != nil && p.Building.Owner == playerID
}
