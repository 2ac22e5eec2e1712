package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/mulens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.FTPHost, convey.ShouldEqual, "ftp.astrouw.edu.pl:21")
				convey.So(cfg.DataDir, convey.ShouldEqual, "")
				convey.So(cfg.MaxRetries, convey.ShouldEqual, 3)
				convey.So(cfg.SigmaMin, convey.ShouldEqual, 0.0)
				convey.So(cfg.FreqMin, convey.ShouldEqual, 0.0001)
				convey.So(cfg.FreqMax, convey.ShouldEqual, 0.03)
				convey.So(cfg.FreqSteps, convey.ShouldEqual, 10000)
				convey.So(cfg.PeakFloor, convey.ShouldEqual, 0.01)
				convey.So(cfg.RefFreq, convey.ShouldEqual, 0.017)
				convey.So(cfg.RefTolerance, convey.ShouldEqual, 0.00001)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			dir := t.TempDir()
			_ = os.Setenv("MULENS_DATA_DIR", dir)
			_ = os.Setenv("MULENS_MAX_RETRIES", "5")
			_ = os.Setenv("MULENS_SIGMA_MIN", "0.003")
			_ = os.Setenv("MULENS_PEAK_FLOOR", "0.012")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DataDir, convey.ShouldEqual, dir)
				convey.So(cfg.MaxRetries, convey.ShouldEqual, 5)
				convey.So(cfg.SigmaMin, convey.ShouldEqual, 0.003)
				convey.So(cfg.PeakFloor, convey.ShouldEqual, 0.012)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			path := filepath.Join(t.TempDir(), "mulens.yaml")
			yaml := "log_level: debug\nmax_retries: 1\nfreq_steps: 500\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("MULENS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MaxRetries, convey.ShouldEqual, 1)
				convey.So(cfg.FreqSteps, convey.ShouldEqual, 500)
			})
		})

		convey.Convey("When the configuration is invalid", func() {
			clearConfigEnvVars()

			convey.Convey("And max_retries is negative", func() {
				_ = os.Setenv("MULENS_MAX_RETRIES", "-1")
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})

			convey.Convey("And the data dir does not exist", func() {
				_ = os.Setenv("MULENS_DATA_DIR", "/definitely/not/a/dir")
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})

			convey.Convey("And the frequency bounds are inverted", func() {
				_ = os.Setenv("MULENS_FREQ_MIN", "0.05")
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"MULENS_CONFIG", "MULENS_DATA_DIR", "MULENS_FTP_HOST",
		"MULENS_MAX_RETRIES", "MULENS_SIGMA_MIN", "MULENS_FREQ_MIN",
		"MULENS_FREQ_MAX", "MULENS_FREQ_STEPS", "MULENS_PEAK_FLOOR",
		"MULENS_REF_FREQ", "MULENS_REF_TOLERANCE", "MULENS_LOG_LEVEL",
	} {
		_ = os.Unsetenv(key)
	}
}
