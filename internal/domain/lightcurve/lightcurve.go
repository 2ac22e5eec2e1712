// Package lightcurve evaluates the single-lens point-source brightness
// model of a microlensing event.
package lightcurve

import (
	"math"

	"github.com/okian/mulens/internal/domain/model"
)

// Sampling resolution of CenteredSeries: one point per hour in day units.
const gridStep = 1.0 / 24

// Model is a stateless evaluator built from one validated parameter set.
type Model struct {
	params model.ModelParameters
}

// New creates a Model from clamped, validated parameters.
func New(params model.ModelParameters) *Model {
	return &Model{params: params}
}

// MagnitudeAt computes the blended apparent magnitude at time t.
//
// The normalized lens-source separation is
// u = sqrt(umin^2 + ((t-t0)/tE)^2), the point-source amplification is
// A(u) = (u^2+2)/(u*sqrt(u^2+4)), and blending rescales the amplification
// toward 1 by the blending fraction. u^2+4 > 0 always, so the expression is
// stable everywhere.
func (m *Model) MagnitudeAt(t float64) float64 {
	p := m.params
	u := math.Sqrt(p.Umin*p.Umin + ((t-p.T0)/p.TE)*((t-p.T0)/p.TE))
	amp := (u*u + 2) / (u * math.Sqrt(u*u+4))
	amp = (amp-1)*p.FBL + 1
	return p.Baseline - 2.5*math.Log10(amp)
}

// CenteredSeries samples the model on a uniform hourly grid spanning the
// integer-floored range of the observation times, both endpoints included.
// Same inputs always yield the same grid and values.
func (m *Model) CenteredSeries(times []float64) (ts, mags []float64) {
	if len(times) == 0 {
		return nil, nil
	}
	lo, hi := times[0], times[0]
	for _, t := range times[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	first := math.Floor(lo)
	last := math.Floor(hi)

	n := int((last-first)/gridStep) + 1
	ts = make([]float64, n)
	mags = make([]float64, n)
	for i := 0; i < n; i++ {
		t := first + float64(i)*gridStep
		ts[i] = t
		mags[i] = m.MagnitudeAt(t)
	}
	return ts, mags
}
