package photometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal places of converted coordinates.
const coordPrecision = 3

// RA converts a sexagesimal right ascension "hh:mm:ss.s" to degrees.
func RA(s string) (float64, error) {
	h, m, sec, err := splitSexagesimal(s)
	if err != nil {
		return 0, fmt.Errorf("right ascension %q: %w", s, err)
	}
	deg := 15 * (h + m/60 + sec/3600)
	return roundTo(deg, coordPrecision), nil
}

// Dec converts a sexagesimal declination "dd:mm:ss.s" to degrees. The sign
// of the degree component carries through the minutes and seconds.
func Dec(s string) (float64, error) {
	d, m, sec, err := splitSexagesimal(s)
	if err != nil {
		return 0, fmt.Errorf("declination %q: %w", s, err)
	}
	sign := 1.0
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		sign = -1
		d = -d
	}
	deg := sign * (d + m/60 + sec/3600)
	return roundTo(deg, coordPrecision), nil
}

func splitSexagesimal(s string) (a, b, c float64, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: want three ':'-separated components", ErrMalformedRow)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, perr := strconv.ParseFloat(p, 64)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedRow, perr)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
