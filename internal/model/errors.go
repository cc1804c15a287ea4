package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameOver       = errors.New("game is over")
	ErrNoPlayers      = errors.New("at least one player is required")
	ErrTooManyPlayers = errors.New("too many players")
	ErrNotPlayerTurn  = errors.New("not this player's turn")

	// Play errors. Both leave state untouched; callers are expected to
	// have validated via LegalPlays first, but the engine re-validates.
	ErrNoCardDrawn      = errors.New("no card drawn")
	ErrIllegalPlacement = errors.New("illegal placement")

	// Collection errors
	ErrInvalidStackIndex = errors.New("invalid stack index")
	ErrInvalidCondition  = errors.New("invalid collection condition")
	ErrInvalidSide       = errors.New("invalid placement side")

	// High score errors
	ErrScoresUnavailable = errors.New("high scores unavailable")
)
