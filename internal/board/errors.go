package board

import "errors"

// Board errors
var (
	ErrInvalidCoords       = errors.New("invalid coordinates")
	ErrPathNotFound        = errors.New("path does not exist")
	ErrOccupied            = errors.New("position already has a building")
	ErrTooClose            = errors.New("too close to another building")
	ErrNotConnected        = errors.New("not connected to the player's network")
	ErrRequiresSettlement  = errors.New("requires an existing settlement owned by the player")
	ErrInvalidBuildingType = errors.New("invalid building type for this location")
	ErrNoRobberTile        = errors.New("no desert tile to place the robber on")
	ErrDuplicateTile       = errors.New("duplicate tile coordinates")
	ErrInvalidTile         = errors.New("invalid tile")
)
