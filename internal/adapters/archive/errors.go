package archive

import "errors"

// Sentinel kinds for archive location errors.
var (
	ErrUnsupportedYear = errors.New("unsupported year")
)
