package cache

import "errors"

// Sentinel kinds for cache errors.
var (
	ErrInvalidDir = errors.New("invalid data directory")
)
