// Package fit scores a brightness model against observed photometry.
package fit

import (
	"fmt"
	"math"

	"github.com/okian/mulens/internal/domain/model"
)

// Decimal places of the reported statistic, for stable output across runs.
const resultPrecision = 3

// ModelFunc predicts a magnitude at a given time.
type ModelFunc func(t float64) float64

// ReducedChiSquare accumulates (observed-predicted)^2/sigma^2 over the
// series and divides by (n - dof).
//
// A non-positive divisor means the statistic is undefined and fails with
// ErrDegenerateFit. A zero uncertainty is a data-quality fault and fails
// with ErrInvalidUncertainty instead of contributing an infinity.
func ReducedChiSquare(series model.PhotometricSeries, modelFn ModelFunc, dof int) (float64, error) {
	n := series.Len()
	if n <= dof {
		return 0, fmt.Errorf("%w: %d observations with %d degrees of freedom", ErrDegenerateFit, n, dof)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sigma := series.Err[i]
		if sigma == 0 {
			return 0, fmt.Errorf("%w: observation %d at t=%g", ErrInvalidUncertainty, i, series.Time[i])
		}
		residual := series.Mag[i] - modelFn(series.Time[i])
		sum += (residual * residual) / (sigma * sigma)
	}

	return roundTo(sum/float64(n-dof), resultPrecision), nil
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
