package photometry

import "errors"

// Sentinel kinds for document parsing errors.
var (
	ErrMalformedRow = errors.New("malformed row")
	ErrBadLayout    = errors.New("unexpected document layout")
)
