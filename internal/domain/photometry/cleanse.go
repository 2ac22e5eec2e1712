package photometry

import (
	"math"

	"github.com/okian/mulens/internal/domain/model"
)

// Magnitudes at or above this value are archive placeholders for missing
// photometry, not measurements.
const placeholderMag = 25

// Cleanse drops placeholder observations and applies the uncertainty floor
// in quadrature. The same indices are removed from all three sequences, so
// the alignment invariant holds on the result. The input is not modified.
func Cleanse(series model.PhotometricSeries, sigmaMin float64) model.PhotometricSeries {
	n := series.Len()
	times := make([]float64, 0, n)
	mags := make([]float64, 0, n)
	errs := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if series.Mag[i] >= placeholderMag {
			continue
		}
		times = append(times, series.Time[i])
		mags = append(mags, series.Mag[i])
		errs = append(errs, math.Sqrt(series.Err[i]*series.Err[i]+sigmaMin*sigmaMin))
	}

	return model.PhotometricSeries{Time: times, Mag: mags, Err: errs}
}
