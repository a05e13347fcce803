package maps

import (
	"strings"

	"catan-engine/internal/board"
)

// toCoords converts a JSON [q, r] pair to board coordinates.
func toCoords(p [2]int) board.Coords {
	return board.C(p[0], p[1])
}

// fromCoords converts board coordinates to a JSON [q, r] pair.
func fromCoords(c board.Coords) [2]int {
	return [2]int{c.Q, c.R}
}

func terrainName(h board.HexType) string {
	return strings.ToLower(h.String())
}

// resourceName returns the JSON name of a harbor resource, empty for generic.
func resourceName(r board.Resource) string {
	if r == board.ResourceNone {
		return ""
	}
	return strings.ToLower(r.String())
}
