package periodogram

import "errors"

// Sentinel kinds for spectral analysis errors.
var (
	ErrInsufficientData = errors.New("not enough observations for a spectrum")
	ErrLengthMismatch   = errors.New("time and magnitude lengths differ")
	ErrNoPeakBand       = errors.New("no grid frequencies above the peak floor")
)
