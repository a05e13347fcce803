package board

import (
	"slices"
	"strings"
)

// Resource represents a type of resource card.
type Resource int

const (
	ResourceNone Resource = iota
	ResourceLumber
	ResourceBrick
	ResourceWool
	ResourceGrain
	ResourceOre
)

// AllResources returns every real resource in a fixed order.
func AllResources() []Resource {
	return []Resource{
		ResourceLumber,
		ResourceBrick,
		ResourceWool,
		ResourceGrain,
		ResourceOre,
	}
}

// String returns the resource name.
func (r Resource) String() string {
	switch r {
	case ResourceLumber:
		return "Lumber"
	case ResourceBrick:
		return "Brick"
	case ResourceWool:
		return "Wool"
	case ResourceGrain:
		return "Grain"
	case ResourceOre:
		return "Ore"
	default:
		return "None"
	}
}

// ParseResource converts a resource name (case-insensitive) to a Resource.
// Unknown names return ResourceNone and false.
func ParseResource(s string) (Resource, bool) {
	for _, r := range AllResources() {
		if strings.EqualFold(r.String(), s) {
			return r, true
		}
	}
	return ResourceNone, false
}

// HexType is the terrain of a tile.
type HexType int

const (
	HexForest HexType = iota
	HexHills
	HexPasture
	HexFields
	HexMountains
	HexDesert
)

// AllHexTypes returns every terrain in a fixed order.
func AllHexTypes() []HexType {
	return []HexType{HexForest, HexHills, HexPasture, HexFields, HexMountains, HexDesert}
}

// String returns the terrain name.
func (h HexType) String() string {
	switch h {
	case HexForest:
		return "Forest"
	case HexHills:
		return "Hills"
	case HexPasture:
		return "Pasture"
	case HexFields:
		return "Fields"
	case HexMountains:
		return "Mountains"
	case HexDesert:
		return "Desert"
	default:
		return "Unknown"
	}
}

// ParseHexType converts a terrain name (case-insensitive) to a HexType.
func ParseHexType(s string) (HexType, bool) {
	for _, h := range AllHexTypes() {
		if strings.EqualFold(h.String(), s) {
			return h, true
		}
	}
	return 0, false
}

// Resource returns what a tile of this terrain produces.
// Deserts produce ResourceNone.
func (h HexType) Resource() Resource {
	switch h {
	case HexForest:
		return ResourceLumber
	case HexHills:
		return ResourceBrick
	case HexPasture:
		return ResourceWool
	case HexFields:
		return ResourceGrain
	case HexMountains:
		return ResourceOre
	default:
		return ResourceNone
	}
}

// Productive returns true if tiles of this terrain yield a resource.
func (h HexType) Productive() bool {
	return h.Resource() != ResourceNone
}

// Tile is a hex on the board. Token is the dice number that triggers it,
// 0 for a tile without a token.
type Tile struct {
	Coords Coords  `json:"coords"`
	Type   HexType `json:"type"`
	Token  int     `json:"token,omitempty"`
}

// validToken returns true for the numbers printed on real tokens.
func validToken(n int) bool {
	return n >= 2 && n <= 12 && n != 7
}

// Harbor is a trade-rate modifier straddling a path. A harbor whose Resource
// is ResourceNone is a generic 3:1 harbor.
type Harbor struct {
	Path     PathKey  `json:"path"`
	Resource Resource `json:"resource"`
}

// Generic returns true if the harbor accepts any resource.
func (h Harbor) Generic() bool {
	return h.Resource == ResourceNone
}

// SortHarbors orders harbors by path.
func SortHarbors(hs []Harbor) {
	slices.SortFunc(hs, func(a, b Harbor) int {
		return comparePathKeys(a.Path, b.Path)
	})
}
