// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Field identifies the sky field an event was observed in.
type Field string

// Survey fields monitored by the archive.
const (
	FieldBulge Field = "blg"
	FieldLMC   Field = "lmc"
	FieldSMC   Field = "smc"
)

// DocKind identifies one of the two per-event document types.
type DocKind string

// Document kinds served by the archive.
const (
	KindPhotometry DocKind = "phot"
	KindParameters DocKind = "params"
)

// EventKey is the immutable identity of an observed microlensing event.
// Year determines the archive generation; Number is the per-year sequence
// number within Field.
type EventKey struct {
	Year   int
	Number int
	Field  Field
}

// NewEventKey validates and normalizes an event identity. The year itself is
// validated against archive generations at path-derivation time.
func NewEventKey(year, number int, field string) (EventKey, error) {
	if number < 1 {
		return EventKey{}, fmt.Errorf("%w: event number %d", ErrInvalidKey, number)
	}
	f := Field(strings.ToLower(strings.TrimSpace(field)))
	switch f {
	case FieldBulge, FieldLMC, FieldSMC:
	default:
		return EventKey{}, fmt.Errorf("%w: field %q", ErrInvalidKey, field)
	}
	return EventKey{Year: year, Number: number, Field: f}, nil
}

// Document is raw archive content plus its canonical source URL.
// Never mutated after creation.
type Document struct {
	URL     string
	Content string
}

// PhotometricSeries holds index-aligned observation triples:
// Time (Julian date), Mag (I-band magnitude), Err (magnitude uncertainty).
type PhotometricSeries struct {
	Time []float64
	Mag  []float64
	Err  []float64
}

// NewPhotometricSeries enforces the equal-length invariant.
func NewPhotometricSeries(time, mag, err []float64) (PhotometricSeries, error) {
	if len(time) != len(mag) || len(mag) != len(err) {
		return PhotometricSeries{}, fmt.Errorf("%w: %d/%d/%d",
			ErrLengthMismatch, len(time), len(mag), len(err))
	}
	return PhotometricSeries{Time: time, Mag: mag, Err: err}, nil
}

// Len returns the number of observations.
func (s PhotometricSeries) Len() int { return len(s.Time) }

// ModelParameters are the five fitted parameters of the single-lens
// point-source model.
type ModelParameters struct {
	Baseline float64 // I_bl, baseline magnitude of the blend
	Umin     float64 // impact parameter, Einstein radii
	TE       float64 // Einstein-radius crossing time, days
	T0       float64 // time of peak brightness, Julian date
	FBL      float64 // blending fraction, clamped to [0,1]
}

// NewModelParameters validates the parameter set. An out-of-range blending
// fraction is clamped to [0, 1] rather than rejected.
func NewModelParameters(baseline, umin, tE, t0, fbl float64) (ModelParameters, error) {
	// umin == 0 would put the source exactly on the lens axis at peak and
	// divide the magnification by zero.
	if umin <= 0 {
		return ModelParameters{}, fmt.Errorf("%w: umin %g must be positive", ErrInvalidParameters, umin)
	}
	if tE <= 0 {
		return ModelParameters{}, fmt.Errorf("%w: tE %g must be positive", ErrInvalidParameters, tE)
	}
	if fbl > 1 {
		fbl = 1
	} else if fbl < 0 {
		fbl = 0
	}
	return ModelParameters{Baseline: baseline, Umin: umin, TE: tE, T0: t0, FBL: fbl}, nil
}
