package model

import "errors"

// Sentinel kinds for domain model errors.
var (
	ErrInvalidKey        = errors.New("invalid event key")
	ErrLengthMismatch    = errors.New("series length mismatch")
	ErrInvalidParameters = errors.New("invalid model parameters")
)
