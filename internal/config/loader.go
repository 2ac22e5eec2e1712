package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if MULENS_CONFIG is set
//  3. env (prefix MULENS_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MULENS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: MULENS_DATA_DIR, MULENS_SIGMA_MIN, ...
	// Map env keys like MULENS_SIGMA_MIN -> sigma_min (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MULENS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mulens_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func (c *Config) validate() error {
	if c.FTPHost == "" {
		return fmt.Errorf("%w: ftp_host must not be empty", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must be non-negative", ErrInvalidConfig)
	}
	if c.SigmaMin < 0 {
		return fmt.Errorf("%w: sigma_min must be non-negative", ErrInvalidConfig)
	}
	if c.FreqSteps < 2 {
		return fmt.Errorf("%w: freq_steps must be at least 2", ErrInvalidConfig)
	}
	if c.FreqMin <= 0 || c.FreqMax <= c.FreqMin {
		return fmt.Errorf("%w: frequency bounds must satisfy 0 < freq_min < freq_max", ErrInvalidConfig)
	}
	if c.PeakFloor >= c.FreqMax {
		return fmt.Errorf("%w: peak_floor must be below freq_max", ErrInvalidConfig)
	}
	if c.RefTolerance <= 0 {
		return fmt.Errorf("%w: ref_tolerance must be positive", ErrInvalidConfig)
	}
	if c.DataDir != "" {
		info, err := os.Stat(c.DataDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: data_dir %q is not a directory", ErrInvalidConfig, c.DataDir)
		}
	}
	return nil
}
