// Package cache stores archive documents as plain files under the local
// data directory, one file per (event, document kind).
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Outcome reports the effect of a Write.
type Outcome int

// Write outcomes.
const (
	OutcomeWritten Outcome = iota // file was created
	OutcomeExists                 // file was already present and left untouched
)

// String returns the outcome label used in save reports and metrics.
func (o Outcome) String() string {
	if o == OutcomeExists {
		return "exists"
	}
	return "written"
}

// VerifyDir checks that a cache root exists and is a directory.
func VerifyDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrInvalidDir, dir)
	}
	return nil
}

// Read returns the cached document at path. A missing file is a miss, not
// an error.
func Read(path string) (content string, ok bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read cache %s: %w", path, err)
	}
	return string(data), true, nil
}

// Write persists content at path, creating intermediate directories as
// needed. An already-present file is never re-written; the outcome reports
// which of the two cases applied. Idempotent.
func Write(path, content string) (Outcome, error) {
	if _, err := os.Stat(path); err == nil {
		return OutcomeExists, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create cache dirs for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, fmt.Errorf("write cache %s: %w", path, err)
	}
	return OutcomeWritten, nil
}
