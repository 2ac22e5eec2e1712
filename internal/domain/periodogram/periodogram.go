// Package periodogram detects periodic signals in unevenly sampled
// photometry with a normalized Lomb-Scargle power spectrum.
package periodogram

import (
	"fmt"
	"math"
)

// Default analysis parameters, in angular frequency units. The reference
// frequency corresponds to the expected 1-year parallax signal.
const (
	defaultFreqMin      = 0.0001
	defaultFreqMax      = 0.03
	defaultSteps        = 10000
	defaultPeakFloor    = 0.01
	defaultRefFreq      = 0.017
	defaultRefTolerance = 0.00001
	defaultEpochOffset  = 2450000
)

// DefaultEpochCutoff is the customary cutoff when restricting analysis to
// recent observations.
const DefaultEpochCutoff = 2453000

// Decimal places of the reported scalars, for stable output across runs.
const (
	peakPowerPrecision = 4
	peakFreqPrecision  = 6
	periodPrecision    = 4
	refPowerPrecision  = 4
	refNormPrecision   = 8
	fwhmPrecision      = 6
)

// Result holds the computed spectrum and its derived scalars. Freq and
// Power are index-aligned and immutable once returned.
type Result struct {
	Freq  []float64
	Power []float64

	// PeakPower is the maximum normalized power above the peak-search
	// floor. PeakFreq is the frequency of the global grid maximum; the two
	// lookups deliberately scan different bands (see Analyze).
	PeakPower float64
	PeakFreq  float64

	// Period is 2*pi / PeakFreq.
	Period float64

	// FWHM is the full width at half maximum of the peak, or the zero
	// sentinel when no half-power boundary exists on one side.
	FWHM float64

	// RefPower is the mean power near the reference frequency; RefPowerNorm
	// is RefPower divided by PeakPower.
	RefPower     float64
	RefPowerNorm float64
}

// Analyzer computes periodograms over a fixed angular-frequency grid.
type Analyzer struct {
	freqMin   float64
	freqMax   float64
	steps     int
	peakFloor float64
	refFreq   float64
	refTol    float64

	epochOffset float64
	cutoff      float64
	cutoffSet   bool
}

// New creates an Analyzer with configuration options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		freqMin:     defaultFreqMin,
		freqMax:     defaultFreqMax,
		steps:       defaultSteps,
		peakFloor:   defaultPeakFloor,
		refFreq:     defaultRefFreq,
		refTol:      defaultRefTolerance,
		epochOffset: defaultEpochOffset,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the normalized Lomb-Scargle spectrum of (times, mags)
// and extracts the dominant peak.
//
// The peak power is the maximum over frequencies strictly above the search
// floor, which excludes long-period aliasing near zero frequency. The peak
// frequency, however, is located by scanning the full grid for the global
// maximum. The asymmetry is intentional and matches the established
// reduction procedure for these events; restricting both lookups to the
// same band changes the numbers.
func (a *Analyzer) Analyze(times, mags []float64) (Result, error) {
	if len(times) != len(mags) {
		return Result{}, fmt.Errorf("%w: %d times vs %d magnitudes",
			ErrLengthMismatch, len(times), len(mags))
	}

	ts, ys := a.condition(times, mags)
	if len(ts) < 2 {
		return Result{}, fmt.Errorf("%w: %d observations after conditioning",
			ErrInsufficientData, len(ts))
	}

	freq := a.grid()
	power := lombScargle(ts, ys, freq)

	// Restricted-band maximum: the reported peak power.
	peak := math.Inf(-1)
	found := false
	for k, f := range freq {
		if f > a.peakFloor && power[k] > peak {
			peak = power[k]
			found = true
		}
	}
	if !found {
		return Result{}, fmt.Errorf("%w: floor %g excludes the whole grid",
			ErrNoPeakBand, a.peakFloor)
	}

	// Full-grid maximum: the reported peak frequency.
	globalIdx := 0
	for k := 1; k < len(power); k++ {
		if power[k] > power[globalIdx] {
			globalIdx = k
		}
	}
	peakFreq := freq[globalIdx]
	period := 2 * math.Pi / peakFreq

	refPower, refNorm := a.referencePower(freq, power, peak)
	fwhm := halfMaxWidth(freq, power, peak)

	return Result{
		Freq:         freq,
		Power:        power,
		PeakPower:    roundTo(peak, peakPowerPrecision),
		PeakFreq:     roundTo(peakFreq, peakFreqPrecision),
		Period:       roundTo(period, periodPrecision),
		FWHM:         roundTo(fwhm, fwhmPrecision),
		RefPower:     roundTo(refPower, refPowerPrecision),
		RefPowerNorm: roundTo(refNorm, refNormPrecision),
	}, nil
}

// condition applies the optional epoch cutoff and shifts times by the
// reference epoch offset for numerical conditioning.
func (a *Analyzer) condition(times, mags []float64) ([]float64, []float64) {
	ts := make([]float64, 0, len(times))
	ys := make([]float64, 0, len(mags))
	for i, t := range times {
		if a.cutoffSet && t <= a.cutoff {
			continue
		}
		ts = append(ts, t-a.epochOffset)
		ys = append(ys, mags[i])
	}
	return ts, ys
}

// grid returns the linearly spaced angular-frequency grid.
func (a *Analyzer) grid() []float64 {
	freq := make([]float64, a.steps)
	step := (a.freqMax - a.freqMin) / float64(a.steps-1)
	for i := range freq {
		freq[i] = a.freqMin + float64(i)*step
	}
	return freq
}

// referencePower averages power over grid points within the tolerance of
// the reference frequency and normalizes by the peak power. No point within
// tolerance reports zero.
func (a *Analyzer) referencePower(freq, power []float64, peak float64) (refPower, refNorm float64) {
	var sum float64
	var count int
	for k, f := range freq {
		if math.Abs(f-a.refFreq) < a.refTol {
			sum += power[k]
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	refPower = sum / float64(count)
	return refPower, refPower / peak
}

// halfMaxWidth walks outward from the peak index in both directions at once
// until each side first drops below half the peak power. Either side
// running off the grid before crossing yields the zero sentinel for
// "undetectable width".
func halfMaxWidth(freq, power []float64, peak float64) float64 {
	start := 0
	for k, p := range power {
		if p == peak {
			start = k
			break
		}
	}

	half := peak / 2
	i, j := start, start
	var lower, higher float64
	var lowFound, highFound bool
	for j > 0 && i < len(power)-1 {
		if power[j] >= half && power[j-1] < half && !lowFound {
			lower = freq[j-1]
			lowFound = true
		}
		if power[i] >= half && power[i+1] < half && !highFound {
			higher = freq[i+1]
			highFound = true
		}
		if lowFound && highFound {
			break
		}
		i++
		j--
	}
	if !lowFound || !highFound {
		return 0
	}
	return higher - lower
}

// lombScargle evaluates the tau-corrected Lomb-Scargle power at each
// angular frequency, normalized against a zero-mean reference model
// (power divided by half the total signal energy).
func lombScargle(ts, ys, freq []float64) []float64 {
	var energy float64
	for _, y := range ys {
		energy += y * y
	}

	power := make([]float64, len(freq))
	for k, w := range freq {
		var xc, xs, cc, ss, cs float64
		for i, t := range ts {
			c := math.Cos(w * t)
			s := math.Sin(w * t)
			xc += ys[i] * c
			xs += ys[i] * s
			cc += c * c
			ss += s * s
			cs += c * s
		}

		tau := math.Atan2(2*cs, cc-ss) / (2 * w)
		cTau := math.Cos(w * tau)
		sTau := math.Sin(w * tau)
		cTau2 := cTau * cTau
		sTau2 := sTau * sTau
		csTau := 2 * cTau * sTau

		p := 0.5 * ((cTau*xc+sTau*xs)*(cTau*xc+sTau*xs)/(cTau2*cc+csTau*cs+sTau2*ss) +
			(cTau*xs-sTau*xc)*(cTau*xs-sTau*xc)/(cTau2*ss-csTau*cs+sTau2*cc))
		power[k] = p * 2 / energy
	}
	return power
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
