package service

import "errors"

// Common service errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Player service specific errors
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidName    = errors.New("invalid player name")
)

// Match service specific errors
var (
	ErrMatchNotFound = errors.New("match not found")
	ErrEmptyTeam     = errors.New("team must contain at least one player")
)

// Settings service specific errors
var (
	ErrInvalidKFactor = errors.New("k-factor out of range")
)

// Admin service specific errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminDisabled      = errors.New("admin login is not configured")
)
