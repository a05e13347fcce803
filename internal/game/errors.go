package game

import "errors"

// Game errors
var (
	ErrNotYourTurn           = errors.New("not your turn")
	ErrInvalidAction         = errors.New("invalid action for current phase")
	ErrUnknownPlayer         = errors.New("unknown player")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrNoDevelopmentCards    = errors.New("development card deck is empty")
	ErrCardNotHeld           = errors.New("player does not hold that card")
	ErrTradeUnavailable      = errors.New("trade is not available to the player")
	ErrGameOver              = errors.New("game is over")
)
