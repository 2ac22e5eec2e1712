package app

import "errors"

// Sentinel kinds for pipeline errors.
var (
	ErrNoDataDir        = errors.New("no data directory configured")
	ErrNoRetriever      = errors.New("remote retrieval not configured")
	ErrMissingParameter = errors.New("model parameter unavailable")
)
