package remote

import "errors"

// Sentinel kinds for retrieval errors. Invalid path and disabled access are
// permanent and never retried; retry exhaustion reports that the transient
// recovery budget ran out.
var (
	ErrInvalidPath    = errors.New("invalid archive path")
	ErrAccessDisabled = errors.New("archive access disabled")
	ErrRetryExhausted = errors.New("transient retries exhausted")
)
