package photometry_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/mulens/internal/domain/model"
	"github.com/okian/mulens/internal/domain/photometry"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleParams = `OGLE-2015-BLG-0017

Field       BLG505.12
StarNo      94552
RA(J2000.0)   17:53:49.33
Dec(J2000.0) -30:02:40.7
Remarks     faint source

Tmax      2457093.591    0.082
tau       19.715         0.237
umin      0.085          0.002
Amax      11.813         0.249
Dmag      2.681          0.023
fbl       0.512          0.009
I_bl      18.113         0.004
I0        17.385         0.021
`

const samplePhot = `2456925.52085 18.456 0.061 5.23 839.0
2456927.51013 18.507 0.065 5.31 841.2
2456930.49581 18.399 0.059 5.19 838.7
`

func TestParseSeries(t *testing.T) {
	Convey("Given a photometry document", t, func() {
		Convey("When the rows are well-formed", func() {
			s, err := photometry.ParseSeries(samplePhot)

			Convey("Then only the three leading columns should be consumed", func() {
				So(err, ShouldBeNil)
				So(s.Len(), ShouldEqual, 3)
				So(s.Time[0], ShouldEqual, 2456925.52085)
				So(s.Mag[1], ShouldEqual, 18.507)
				So(s.Err[2], ShouldEqual, 0.059)
			})
		})

		Convey("When a row has too few columns", func() {
			_, err := photometry.ParseSeries("2456925.5 18.4 0.06\n2456926.5 18.5\n")

			Convey("Then it should fail with ErrMalformedRow", func() {
				So(errors.Is(err, photometry.ErrMalformedRow), ShouldBeTrue)
			})
		})

		Convey("When a column is not numeric", func() {
			_, err := photometry.ParseSeries("2456925.5 bad 0.06\n")

			Convey("Then it should fail with ErrMalformedRow", func() {
				So(errors.Is(err, photometry.ErrMalformedRow), ShouldBeTrue)
			})
		})
	})
}

func TestParseParameters(t *testing.T) {
	Convey("Given a parameters document", t, func() {
		Convey("When the layout is complete", func() {
			p, err := photometry.ParseParameters(sampleParams)

			Convey("Then header fields should be extracted", func() {
				So(err, ShouldBeNil)
				So(p.Header["Field"], ShouldEqual, "BLG505.12")
				So(p.Header["StarNo"], ShouldEqual, "94552")
				So(p.Header["RA"], ShouldEqual, "17:53:49.33")
				So(p.Header["Dec"], ShouldEqual, "-30:02:40.7")
				So(p.Remarks, ShouldEqual, "faint source")
			})

			Convey("And all eight parameter rows should carry value and error", func() {
				So(err, ShouldBeNil)
				So(len(p.Params), ShouldEqual, 8)
				So(p.Params["tau"].Value, ShouldEqual, 19.715)
				So(p.Params["tau"].Error, ShouldEqual, 0.237)
				So(p.Params["fbl"].Value, ShouldEqual, 0.512)
				So(p.Params["I_bl"].Value, ShouldEqual, 18.113)
			})
		})

		Convey("When a parameter value is the '-' placeholder", func() {
			doc := sampleParams[:len(sampleParams)-len("I0        17.385         0.021\n")] +
				"I0        -              -\n"
			p, err := photometry.ParseParameters(doc)

			Convey("Then it should map to an explicit no-value, not zero", func() {
				So(err, ShouldBeNil)
				So(p.Params, ShouldContainKey, "I0")
				So(p.Params["I0"], ShouldBeNil)
			})
		})

		Convey("When the document is truncated", func() {
			_, err := photometry.ParseParameters("OGLE-2015-BLG-0017\n\nField BLG505\n")

			Convey("Then it should fail with ErrBadLayout", func() {
				So(errors.Is(err, photometry.ErrBadLayout), ShouldBeTrue)
			})
		})
	})
}

func TestCleanse(t *testing.T) {
	Convey("Given a series with placeholder magnitudes", t, func() {
		series, err := model.NewPhotometricSeries(
			[]float64{1, 2, 3, 4},
			[]float64{18.4, 99.999, 18.6, 25.0},
			[]float64{0.03, 9.999, 0.04, 0.05},
		)
		So(err, ShouldBeNil)

		Convey("When cleansing without an uncertainty floor", func() {
			out := photometry.Cleanse(series, 0)

			Convey("Then the same indices should be removed from all sequences", func() {
				So(out.Len(), ShouldEqual, 2)
				So(out.Time, ShouldResemble, []float64{1, 3})
				So(out.Mag, ShouldResemble, []float64{18.4, 18.6})
				So(out.Err, ShouldResemble, []float64{0.03, 0.04})
			})
		})

		Convey("When cleansing with an uncertainty floor", func() {
			out := photometry.Cleanse(series, 0.05)

			Convey("Then the floor should be added in quadrature", func() {
				So(out.Err[0], ShouldAlmostEqual, math.Sqrt(0.03*0.03+0.05*0.05), 1e-12)
				So(out.Err[1], ShouldAlmostEqual, math.Sqrt(0.04*0.04+0.05*0.05), 1e-12)
			})

			Convey("And the input should be left unmodified", func() {
				So(series.Err[0], ShouldEqual, 0.03)
				So(series.Len(), ShouldEqual, 4)
			})
		})
	})
}

func TestCoordinateConversion(t *testing.T) {
	Convey("Given sexagesimal coordinates", t, func() {
		Convey("When converting right ascension", func() {
			deg, err := photometry.RA("17:53:49.33")

			Convey("Then it should scale by 15 degrees per hour", func() {
				So(err, ShouldBeNil)
				So(deg, ShouldEqual, 268.456)
			})
		})

		Convey("When converting a negative declination", func() {
			deg, err := photometry.Dec("-30:02:40.7")

			Convey("Then the sign should carry through minutes and seconds", func() {
				So(err, ShouldBeNil)
				So(deg, ShouldEqual, -30.045)
			})
		})

		Convey("When the string is malformed", func() {
			_, err := photometry.RA("17h53m49s")

			Convey("Then it should fail with ErrMalformedRow", func() {
				So(errors.Is(err, photometry.ErrMalformedRow), ShouldBeTrue)
			})
		})
	})
}
