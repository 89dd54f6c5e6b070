package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrOutOfBounds        = errors.New("position is outside the board")
	ErrInvalidRange       = errors.New("position start exceeds end")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrShipLengthMismatch = errors.New("position length does not match ship")
	ErrUnknownShipKind    = errors.New("unknown ship kind")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrPlacementExhausted = errors.New("could not find a free position for ship")
	ErrEmptyFleet         = errors.New("fleet has no ships")

	// Match errors
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchNotStarted   = errors.New("match has not started")
	ErrMatchNotOver      = errors.New("match is not over yet")
	ErrMatchOver         = errors.New("match is already over")
	ErrTurnLimitExceeded = errors.New("match exceeded the half-turn limit")

	// Targeting errors
	ErrUnknownStrategy = errors.New("unknown targeting strategy")

	// Input errors
	ErrInputClosed = errors.New("input closed")
)
