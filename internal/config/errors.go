package config

import (
	"errors"
)

// Sentinel errors for callers that branch with errors.Is. Validation
// failures wrap ErrInvalidConfig; source or parse failures wrap
// ErrLoadConfig.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrLoadConfig    = errors.New("loading configuration failed")
)
