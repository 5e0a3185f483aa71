package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidWindow = errors.New("event end must be after start")
	ErrNoDuration    = errors.New("duration must be positive")
)
