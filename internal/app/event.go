package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/mulens/internal/adapters/archive"
	"github.com/okian/mulens/internal/domain/fit"
	"github.com/okian/mulens/internal/domain/lightcurve"
	"github.com/okian/mulens/internal/domain/model"
	"github.com/okian/mulens/internal/domain/periodogram"
	"github.com/okian/mulens/internal/domain/photometry"
	"github.com/okian/mulens/pkg/metrics"
)

// The five fitted model parameters: baseline, impact parameter, timescale,
// time of peak, blending fraction.
const defaultDegreesOfFreedom = 5

// Archive names of the parameter rows the brightness model is built from.
var modelParamNames = []string{"I_bl", "umin", "tau", "Tmax", "fbl"}

// Event aggregates both documents of one observed event, parsed and ready
// for analysis. Analysis results are recomputed on every call; nothing is
// cached across calls.
type Event struct {
	Key    model.EventKey
	Params photometry.EventParameters

	// RA and Dec in degrees, converted from the header strings.
	RA  float64
	Dec float64

	series   model.PhotometricSeries
	curve    *lightcurve.Model
	sigmaMin float64
	pgram    *periodogram.Analyzer
}

// Event fetches and parses both documents for key. The brightness model is
// constructed when all five fitted parameters are published; events with
// placeholder parameters still support periodogram analysis.
func (s *Service) Event(ctx context.Context, key model.EventKey) (*Event, error) {
	photDoc, err := s.Fetch(ctx, key, model.KindPhotometry)
	if err != nil {
		return nil, err
	}
	paramsDoc, err := s.Fetch(ctx, key, model.KindParameters)
	if err != nil {
		return nil, err
	}

	series, err := photometry.ParseSeries(photDoc.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", photDoc.URL, err)
	}
	params, err := photometry.ParseParameters(paramsDoc.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", paramsDoc.URL, err)
	}

	ra, err := photometry.RA(params.Header["RA"])
	if err != nil {
		return nil, err
	}
	dec, err := photometry.Dec(params.Header["Dec"])
	if err != nil {
		return nil, err
	}

	ev := &Event{
		Key:      key,
		Params:   params,
		RA:       ra,
		Dec:      dec,
		series:   series,
		sigmaMin: s.sigmaMin,
		pgram:    s.pgram,
	}

	if p, ok := modelParameters(params); ok {
		ev.curve = lightcurve.New(p)
	}
	return ev, nil
}

// modelParameters assembles the brightness-model parameter set, reporting
// false when any of the five rows is unavailable.
func modelParameters(params photometry.EventParameters) (model.ModelParameters, bool) {
	vals := make(map[string]float64, len(modelParamNames))
	for _, name := range modelParamNames {
		p, ok := params.Params[name]
		if !ok || p == nil {
			return model.ModelParameters{}, false
		}
		vals[name] = p.Value
	}
	mp, err := model.NewModelParameters(vals["I_bl"], vals["umin"], vals["tau"], vals["Tmax"], vals["fbl"])
	if err != nil {
		return model.ModelParameters{}, false
	}
	return mp, true
}

// Title is the event's display name, e.g. "2015-BLG-0017".
func (e *Event) Title() string {
	n, err := archive.PaddedNumber(e.Key)
	if err != nil {
		// The key was validated when the documents were located.
		n = fmt.Sprintf("%d", e.Key.Number)
	}
	return fmt.Sprintf("%d-%s-%s", e.Key.Year, strings.ToUpper(string(e.Key.Field)), n)
}

// Curve returns the brightness model, or nil when the archive published no
// usable parameter set.
func (e *Event) Curve() *lightcurve.Model { return e.curve }

// Data returns the cleansed observation series: placeholder rows removed
// and the uncertainty floor applied in quadrature.
func (e *Event) Data() model.PhotometricSeries {
	return photometry.Cleanse(e.series, e.sigmaMin)
}

// ChiSquare scores the brightness model against the cleansed data. A dof
// of zero or below uses the five fitted model parameters.
func (e *Event) ChiSquare(dof int) (float64, error) {
	if e.curve == nil {
		return 0, fmt.Errorf("%w: event %s", ErrMissingParameter, e.Title())
	}
	if dof <= 0 {
		dof = defaultDegreesOfFreedom
	}
	return fit.ReducedChiSquare(e.Data(), e.curve.MagnitudeAt, dof)
}

// Periodogram runs spectral analysis over the cleansed observations.
func (e *Event) Periodogram() (periodogram.Result, error) {
	data := e.Data()
	res, err := e.pgram.Analyze(data.Time, data.Mag)
	if err != nil {
		return periodogram.Result{}, err
	}
	metrics.RecordAnalysis()
	return res, nil
}
