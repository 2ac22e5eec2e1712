// Package photometry turns raw archive documents into structured records
// and prepares observation series for analysis.
package photometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/mulens/internal/domain/model"
)

// Layout of params.dat: a title row, a blank row, five header rows
// (field, star number, RA, Dec, remarks), a blank row, then eight
// parameter rows of (name, value, error).
const (
	headerFirstRow = 2
	headerLastRow  = 6
	paramFirstRow  = 8
	paramRowCount  = 8
	minParamRows   = paramFirstRow + paramRowCount
)

// Param is one named archive parameter with its error. A nil *Param in
// EventParameters.Params means the archive published no value ("-"), which
// is distinct from zero.
type Param struct {
	Value float64
	Error float64
}

// EventParameters is the structured content of a params.dat document.
type EventParameters struct {
	// Header values as published; RA and Dec remain sexagesimal strings
	// here and are converted to degrees by the caller.
	Header  map[string]string
	Remarks string

	// The eight fitted-parameter rows by archive name
	// (Tmax, tau, umin, Amax, Dmag, fbl, I_bl, I0).
	Params map[string]*Param
}

// ParseSeries extracts (time, magnitude, uncertainty) triples from a
// phot.dat document. Only the three leading columns are consumed.
func ParseSeries(content string) (model.PhotometricSeries, error) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	times := make([]float64, 0, len(lines))
	mags := make([]float64, 0, len(lines))
	errs := make([]float64, 0, len(lines))

	for i, line := range lines {
		cols := strings.Fields(line)
		if len(cols) == 0 {
			continue
		}
		if len(cols) < 3 {
			return model.PhotometricSeries{}, fmt.Errorf("%w: line %d has %d columns", ErrMalformedRow, i+1, len(cols))
		}
		var vals [3]float64
		for c := 0; c < 3; c++ {
			v, err := strconv.ParseFloat(cols[c], 64)
			if err != nil {
				return model.PhotometricSeries{}, fmt.Errorf("%w: line %d column %d: %v", ErrMalformedRow, i+1, c+1, err)
			}
			vals[c] = v
		}
		times = append(times, vals[0])
		mags = append(mags, vals[1])
		errs = append(errs, vals[2])
	}

	return model.NewPhotometricSeries(times, mags, errs)
}

// ParseParameters extracts the header fields and the eight fitted-parameter
// rows from a params.dat document. A "-" placeholder for a value or its
// error maps to a nil entry, never to zero.
func ParseParameters(content string) (EventParameters, error) {
	rows := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(rows) < minParamRows {
		return EventParameters{}, fmt.Errorf("%w: %d rows, need at least %d", ErrBadLayout, len(rows), minParamRows)
	}

	p := EventParameters{
		Header: make(map[string]string),
		Params: make(map[string]*Param),
	}

	for r := headerFirstRow; r <= headerLastRow; r++ {
		name, value := splitHeaderRow(rows[r])
		switch name {
		case "Remarks":
			p.Remarks = value
		case "RA(J2000.0)":
			p.Header["RA"] = value
		case "Dec(J2000.0)":
			p.Header["Dec"] = value
		default:
			p.Header[name] = value
		}
	}
	if _, ok := p.Header["RA"]; !ok {
		return EventParameters{}, fmt.Errorf("%w: missing RA header row", ErrBadLayout)
	}
	if _, ok := p.Header["Dec"]; !ok {
		return EventParameters{}, fmt.Errorf("%w: missing Dec header row", ErrBadLayout)
	}

	for r := paramFirstRow; r < len(rows); r++ {
		cols := strings.Fields(rows[r])
		if len(cols) == 0 {
			continue
		}
		if len(cols) < 3 {
			return EventParameters{}, fmt.Errorf("%w: parameter row %d has %d columns", ErrMalformedRow, r+1, len(cols))
		}
		name := cols[0]
		if cols[1] == "-" || cols[2] == "-" {
			p.Params[name] = nil
			continue
		}
		val, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return EventParameters{}, fmt.Errorf("%w: parameter %s value: %v", ErrMalformedRow, name, err)
		}
		perr, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return EventParameters{}, fmt.Errorf("%w: parameter %s error: %v", ErrMalformedRow, name, err)
		}
		p.Params[name] = &Param{Value: val, Error: perr}
	}

	return p, nil
}

// splitHeaderRow splits a header row into its name and the remainder,
// preserving internal spacing of free-text values such as remarks.
func splitHeaderRow(row string) (name, value string) {
	trimmed := strings.TrimSpace(row)
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return trimmed, ""
	}
	return trimmed[:idx], strings.TrimSpace(trimmed[idx:])
}
