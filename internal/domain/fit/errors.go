package fit

import "errors"

// Sentinel kinds for goodness-of-fit errors.
var (
	ErrDegenerateFit      = errors.New("degrees of freedom must be below observation count")
	ErrInvalidUncertainty = errors.New("zero magnitude uncertainty")
)
