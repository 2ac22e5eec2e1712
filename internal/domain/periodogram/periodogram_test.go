package periodogram_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/okian/mulens/internal/domain/periodogram"
	. "github.com/smartystreets/goconvey/convey"
)

// gridFreq returns the k-th frequency of the default 10000-point grid so
// that synthetic signals can sit exactly on a grid point.
func gridFreq(k int) float64 {
	return 0.0001 + float64(k)*(0.03-0.0001)/9999
}

func TestAnalyzeSinusoid(t *testing.T) {
	Convey("Given a pure sinusoid at a known angular frequency", t, func() {
		f0 := gridFreq(6655) // ~0.02, inside the peak-search band
		n := 500
		times := make([]float64, n)
		mags := make([]float64, n)
		for i := 0; i < n; i++ {
			// Slightly uneven sampling, times in raw Julian dates.
			ti := 2450000 + float64(i)*3.7 + 0.31*math.Sin(float64(i))
			times[i] = ti
			mags[i] = math.Sin(f0 * (ti - 2450000))
		}

		a := periodogram.New()

		Convey("When analyzing", func() {
			res, err := a.Analyze(times, mags)

			Convey("Then the peak should land on the signal frequency", func() {
				So(err, ShouldBeNil)
				So(res.PeakFreq, ShouldAlmostEqual, f0, 1e-5)
				So(res.PeakPower, ShouldAlmostEqual, 1.0, 1e-2)
			})

			Convey("And the derived period should match 2*pi/f0", func() {
				So(err, ShouldBeNil)
				So(res.Period, ShouldAlmostEqual, 2*math.Pi/f0, 0.05)
			})

			Convey("And the peak should have measurable width", func() {
				So(err, ShouldBeNil)
				So(res.FWHM, ShouldBeGreaterThan, 0)
			})

			Convey("And the grids should be index-aligned at the configured size", func() {
				So(err, ShouldBeNil)
				So(len(res.Freq), ShouldEqual, 10000)
				So(len(res.Power), ShouldEqual, len(res.Freq))
				So(res.Freq[0], ShouldAlmostEqual, 0.0001, 1e-12)
				So(res.Freq[len(res.Freq)-1], ShouldAlmostEqual, 0.03, 1e-12)
			})

			Convey("And the normalized reference power should be within [0, 1]", func() {
				So(err, ShouldBeNil)
				So(res.RefPowerNorm, ShouldBeGreaterThanOrEqualTo, 0)
				So(res.RefPowerNorm, ShouldBeLessThanOrEqualTo, 1)
			})
		})
	})
}

func TestAnalyzeAsymmetricLookup(t *testing.T) {
	Convey("Given a signal dominated by its DC component", t, func() {
		// A large constant offset concentrates normalized power at the low
		// end of the grid, below the peak-search floor.
		f0 := gridFreq(6655)
		n := 400
		times := make([]float64, n)
		mags := make([]float64, n)
		for i := 0; i < n; i++ {
			ti := 2450000 + float64(i)*4.1
			times[i] = ti
			mags[i] = 10 + 0.05*math.Sin(f0*(ti-2450000))
		}

		Convey("When analyzing", func() {
			res, err := periodogram.New().Analyze(times, mags)

			Convey("Then the peak frequency should come from the full grid", func() {
				So(err, ShouldBeNil)
				// Global maximum sits below the floor; the restricted-band
				// peak power is far smaller than the global one.
				So(res.PeakFreq, ShouldBeLessThan, 0.01)
				So(res.PeakPower, ShouldBeLessThan, res.Power[0])
			})
		})
	})
}

func TestAnalyzeSentinelWidth(t *testing.T) {
	Convey("Given two observations", t, func() {
		// Two points are fit exactly at every frequency, so the normalized
		// power is ~1 across the whole grid and never crosses half maximum.
		times := []float64{2455000.0, 2455123.7}
		mags := []float64{15.2, 16.9}

		Convey("When analyzing", func() {
			res, err := periodogram.New().Analyze(times, mags)

			Convey("Then the width should report the zero sentinel", func() {
				So(err, ShouldBeNil)
				So(res.FWHM, ShouldEqual, 0.0)
			})
		})
	})

	Convey("Given white noise", t, func() {
		rng := rand.New(rand.NewSource(7))
		n := 300
		times := make([]float64, n)
		mags := make([]float64, n)
		for i := 0; i < n; i++ {
			times[i] = 2450000 + float64(i)*5.3 + rng.Float64()
			mags[i] = rng.NormFloat64()
		}

		Convey("When analyzing", func() {
			res, err := periodogram.New().Analyze(times, mags)

			Convey("Then analysis should complete with a non-negative width", func() {
				So(err, ShouldBeNil)
				So(res.FWHM, ShouldBeGreaterThanOrEqualTo, 0)
				So(res.PeakPower, ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestAnalyzeConditioning(t *testing.T) {
	Convey("Given an analyzer with an epoch cutoff", t, func() {
		a := periodogram.New(periodogram.WithEpochCutoff(periodogram.DefaultEpochCutoff))

		Convey("When all observations predate the cutoff", func() {
			times := []float64{2451000, 2451001, 2451002}
			mags := []float64{15, 15.1, 15.2}
			_, err := a.Analyze(times, mags)

			Convey("Then it should fail with ErrInsufficientData", func() {
				So(errors.Is(err, periodogram.ErrInsufficientData), ShouldBeTrue)
			})
		})
	})

	Convey("Given mismatched inputs", t, func() {
		_, err := periodogram.New().Analyze([]float64{1, 2, 3}, []float64{15, 15.1})

		Convey("Then it should fail with ErrLengthMismatch", func() {
			So(errors.Is(err, periodogram.ErrLengthMismatch), ShouldBeTrue)
		})
	})

	Convey("Given a floor excluding the whole grid", t, func() {
		a := periodogram.New(
			periodogram.WithFrequencyBounds(0.0001, 0.03),
			periodogram.WithPeakFloor(0.5),
		)
		times := []float64{2455000, 2455010, 2455020, 2455030}
		mags := []float64{15, 15.2, 15.3, 15.1}
		_, err := a.Analyze(times, mags)

		Convey("Then it should fail with ErrNoPeakBand", func() {
			So(errors.Is(err, periodogram.ErrNoPeakBand), ShouldBeTrue)
		})
	})
}
