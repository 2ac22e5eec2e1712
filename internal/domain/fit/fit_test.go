package fit_test

import (
	"errors"
	"testing"

	"github.com/okian/mulens/internal/domain/fit"
	"github.com/okian/mulens/internal/domain/lightcurve"
	"github.com/okian/mulens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func syntheticSeries(m *lightcurve.Model, n int) model.PhotometricSeries {
	ts := make([]float64, n)
	mags := make([]float64, n)
	errs := make([]float64, n)
	for i := 0; i < n; i++ {
		ts[i] = 2457100 + float64(i)*0.5
		mags[i] = m.MagnitudeAt(ts[i])
		errs[i] = 0.01
	}
	s, _ := model.NewPhotometricSeries(ts, mags, errs)
	return s
}

func TestReducedChiSquare(t *testing.T) {
	Convey("Given a model and synthetic observations", t, func() {
		params, _ := model.NewModelParameters(18.0, 0.3, 20, 2457120, 0.8)
		m := lightcurve.New(params)

		Convey("When the data exactly matches the model", func() {
			series := syntheticSeries(m, 50)
			rcs, err := fit.ReducedChiSquare(series, m.MagnitudeAt, 5)

			Convey("Then the statistic should be zero", func() {
				So(err, ShouldBeNil)
				So(rcs, ShouldEqual, 0.0)
			})
		})

		Convey("When the data deviates by a known amount", func() {
			series := syntheticSeries(m, 15)
			for i := range series.Mag {
				series.Mag[i] += 0.01 // one sigma each
			}
			rcs, err := fit.ReducedChiSquare(series, m.MagnitudeAt, 5)

			Convey("Then the statistic should be n/(n-dof)", func() {
				So(err, ShouldBeNil)
				So(rcs, ShouldEqual, 1.5) // 15 / (15-5)
			})
		})

		Convey("When degrees of freedom reach the observation count", func() {
			series := syntheticSeries(m, 5)
			_, err := fit.ReducedChiSquare(series, m.MagnitudeAt, 5)

			Convey("Then it should fail with ErrDegenerateFit", func() {
				So(errors.Is(err, fit.ErrDegenerateFit), ShouldBeTrue)
			})
		})

		Convey("When degrees of freedom exceed the observation count", func() {
			series := syntheticSeries(m, 3)
			_, err := fit.ReducedChiSquare(series, m.MagnitudeAt, 5)

			Convey("Then it should fail with ErrDegenerateFit", func() {
				So(errors.Is(err, fit.ErrDegenerateFit), ShouldBeTrue)
			})
		})

		Convey("When an observation has zero uncertainty", func() {
			series := syntheticSeries(m, 10)
			series.Err[4] = 0
			_, err := fit.ReducedChiSquare(series, m.MagnitudeAt, 5)

			Convey("Then it should fail with ErrInvalidUncertainty", func() {
				So(errors.Is(err, fit.ErrInvalidUncertainty), ShouldBeTrue)
			})
		})
	})
}
