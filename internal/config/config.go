// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the local cache root. Empty forces remote-only operation.
	DataDir string `koanf:"data_dir"`

	// FTPHost is the archive address, host:port.
	FTPHost string `koanf:"ftp_host"`

	// FTPTimeoutSeconds bounds dial and control-channel operations.
	FTPTimeoutSeconds int `koanf:"ftp_timeout_seconds"`

	// MaxRetries caps reconnect-and-retry cycles on transient failures.
	MaxRetries int `koanf:"max_retries"`

	// SigmaMin is the uncertainty floor added in quadrature during cleansing.
	SigmaMin float64 `koanf:"sigma_min"`

	// Periodogram grid and search parameters (angular frequency units).
	FreqMin      float64 `koanf:"freq_min"`
	FreqMax      float64 `koanf:"freq_max"`
	FreqSteps    int     `koanf:"freq_steps"`
	PeakFloor    float64 `koanf:"peak_floor"`
	RefFreq      float64 `koanf:"ref_freq"`
	RefTolerance float64 `koanf:"ref_tolerance"`
}

// Default values for the periodogram grid. The reference frequency is the
// expected 1-year parallax signal in angular frequency units.
const (
	defaultFreqMin      = 0.0001
	defaultFreqMax      = 0.03
	defaultFreqSteps    = 10000
	defaultPeakFloor    = 0.01
	defaultRefFreq      = 0.017
	defaultRefTolerance = 0.00001
)

const (
	defaultFTPHost    = "ftp.astrouw.edu.pl:21"
	defaultFTPTimeout = 30
	defaultMaxRetries = 3
)

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		DataDir:           "",
		FTPHost:           defaultFTPHost,
		FTPTimeoutSeconds: defaultFTPTimeout,
		MaxRetries:        defaultMaxRetries,
		SigmaMin:          0,
		FreqMin:           defaultFreqMin,
		FreqMax:           defaultFreqMax,
		FreqSteps:         defaultFreqSteps,
		PeakFloor:         defaultPeakFloor,
		RefFreq:           defaultRefFreq,
		RefTolerance:      defaultRefTolerance,
	}
}
