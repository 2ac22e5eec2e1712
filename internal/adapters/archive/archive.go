// Package archive derives remote and cache locations for event documents
// across the three archive generations. Pure functions, no I/O.
package archive

import (
	"fmt"
	"path/filepath"

	"github.com/okian/mulens/internal/domain/model"
)

// DefaultHost is the archive FTP host, without port.
const DefaultHost = "ftp.astrouw.edu.pl"

// Generation is one of the three survey phases with published early-warning
// data. The numeric value appears in remote paths.
type Generation int

// Archive generations by survey phase.
const (
	GenerationII  Generation = 2 // 1998-2000
	GenerationIII Generation = 3 // 2002-2009
	GenerationIV  Generation = 4 // 2011-2019
)

// GenerationFor maps a survey year to its archive generation. Years outside
// all three inclusive ranges are unsupported and fail fast.
func GenerationFor(year int) (Generation, error) {
	switch {
	case year >= 1998 && year <= 2000:
		return GenerationII, nil
	case year >= 2002 && year <= 2009:
		return GenerationIII, nil
	case year >= 2011 && year <= 2019:
		return GenerationIV, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedYear, year)
	}
}

// PadWidth is the zero-padding width of event numbers in this generation's
// paths.
func (g Generation) PadWidth() int {
	switch g {
	case GenerationII:
		return 2
	case GenerationIII:
		return 3
	default:
		return 4
	}
}

// PaddedNumber formats the event number with the generation-appropriate
// zero padding for the key's year.
func PaddedNumber(key model.EventKey) (string, error) {
	gen, err := GenerationFor(key.Year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", gen.PadWidth(), key.Number), nil
}

// RemotePath is the document path relative to the FTP root.
func RemotePath(key model.EventKey, kind model.DocKind) (string, error) {
	gen, err := GenerationFor(key.Year)
	if err != nil {
		return "", err
	}
	n, err := PaddedNumber(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/ogle/ogle%d/ews/%d/%s-%s/%s.dat", gen, key.Year, key.Field, n, kind), nil
}

// FileURL is the canonical browser-pasteable address of a document.
func FileURL(host string, key model.EventKey, kind model.DocKind) (string, error) {
	path, err := RemotePath(key, kind)
	if err != nil {
		return "", err
	}
	return "ftp://" + host + path, nil
}

// CachePath is the document location under the local cache root.
func CachePath(baseDir string, key model.EventKey, kind model.DocKind) (string, error) {
	n, err := PaddedNumber(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir,
		fmt.Sprintf("%d", key.Year),
		fmt.Sprintf("%s-%s", key.Field, n),
		fmt.Sprintf("%s.dat", kind)), nil
}
