// Package maps handles board layout loading, generation and text dumps.
package maps

import "catan-engine/internal/board"

// RawLayout is the format stored in JSON files.
type RawLayout struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Tiles   []RawTile   `json:"tiles"`
	Harbors []RawHarbor `json:"harbors"`
	Robber  *[2]int     `json:"robber,omitempty"` // Defaults to the first desert
}

// RawTile is one tile from the JSON file. Coordinates are lattice [q, r].
type RawTile struct {
	At      [2]int `json:"at"`
	Terrain string `json:"terrain"`         // forest, hills, pasture, fields, mountains, desert
	Token   int    `json:"token,omitempty"` // Omitted for the desert
}

// RawHarbor is one harbor from the JSON file.
type RawHarbor struct {
	Path     [2][2]int `json:"path"`
	Resource string    `json:"resource,omitempty"` // Empty for a generic 3:1 harbor
}

// Layout is a processed layout ready to become a board.
type Layout struct {
	ID      string
	Name    string
	Tiles   []board.Tile
	Harbors []board.Harbor
	Robber  *board.Coords
}

// NewBoard builds a fresh board from the layout. Each call returns an
// independent board.
func (l *Layout) NewBoard() (*board.Board, error) {
	return board.New(l.Tiles, l.Harbors, l.Robber)
}

// TileCount returns the number of tiles in the layout.
func (l *Layout) TileCount() int {
	return len(l.Tiles)
}
