package periodogram

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithFrequencyBounds sets the angular-frequency grid bounds.
func WithFrequencyBounds(minFreq, maxFreq float64) Option {
	return func(a *Analyzer) {
		if minFreq > 0 && maxFreq > minFreq {
			a.freqMin = minFreq
			a.freqMax = maxFreq
		}
	}
}

// WithSteps sets the number of grid points.
func WithSteps(steps int) Option {
	return func(a *Analyzer) {
		if steps >= 2 {
			a.steps = steps
		}
	}
}

// WithPeakFloor sets the frequency floor for the peak-power search.
func WithPeakFloor(floor float64) Option {
	return func(a *Analyzer) {
		if floor >= 0 {
			a.peakFloor = floor
		}
	}
}

// WithReferenceFrequency sets the fixed reference frequency.
func WithReferenceFrequency(freq float64) Option {
	return func(a *Analyzer) {
		if freq > 0 {
			a.refFreq = freq
		}
	}
}

// WithReferenceTolerance sets the half-window around the reference frequency.
func WithReferenceTolerance(tol float64) Option {
	return func(a *Analyzer) {
		if tol > 0 {
			a.refTol = tol
		}
	}
}

// WithEpochCutoff restricts analysis to observations strictly after t.
func WithEpochCutoff(t float64) Option {
	return func(a *Analyzer) {
		a.cutoff = t
		a.cutoffSet = true
	}
}

// WithEpochOffset sets the reference epoch subtracted from all times.
func WithEpochOffset(offset float64) Option {
	return func(a *Analyzer) {
		if offset >= 0 {
			a.epochOffset = offset
		}
	}
}
