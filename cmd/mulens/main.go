// Command mulens fetches microlensing survey event documents from the
// archive and analyzes their brightness variation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/mulens/internal/adapters/remote"
	"github.com/okian/mulens/internal/app"
	"github.com/okian/mulens/internal/config"
	"github.com/okian/mulens/internal/domain/model"
	"github.com/okian/mulens/internal/domain/periodogram"
	"github.com/okian/mulens/pkg/logger"
)

// Flags shared by every subcommand: they identify one survey event.
var (
	flagYear  int
	flagN     int
	flagField string
)

// cfg is loaded once in the root PersistentPreRunE and read by subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "mulens",
	Short:         "Fetch and analyze microlensing survey events",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.Init(); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}
		ctx := cmd.Context()
		c, err := config.Load(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			logger.Get().Warn(ctx, "invalid log_level; falling back to info",
				logger.String("log_level", cfg.LogLevel), logger.Error(err))
			_ = logger.SetLevelString("info")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "survey year (yyyy)")
	rootCmd.PersistentFlags().IntVar(&flagN, "n", 0, "event number within the year")
	rootCmd.PersistentFlags().StringVar(&flagField, "field", "blg", "sky field: blg, lmc, smc")
}

// eventKey validates the shared event flags.
func eventKey() (model.EventKey, error) {
	return model.NewEventKey(flagYear, flagN, flagField)
}

// newService wires the remote client and application service from the loaded
// configuration. The caller must Close the returned client.
func newService(pgramOpts ...periodogram.Option) (*app.Service, *remote.Client) {
	log := logger.Get()
	client := remote.NewClient(
		remote.WithHost(cfg.FTPHost),
		remote.WithTimeout(time.Duration(cfg.FTPTimeoutSeconds)*time.Second),
		remote.WithMaxRetries(cfg.MaxRetries),
		remote.WithLogger(log.Named("remote")),
	)
	opts := append([]periodogram.Option{
		periodogram.WithFrequencyBounds(cfg.FreqMin, cfg.FreqMax),
		periodogram.WithSteps(cfg.FreqSteps),
		periodogram.WithPeakFloor(cfg.PeakFloor),
		periodogram.WithReferenceFrequency(cfg.RefFreq),
		periodogram.WithReferenceTolerance(cfg.RefTolerance),
	}, pgramOpts...)
	svc := app.New(
		app.WithDataDir(cfg.DataDir),
		app.WithHost(cfg.FTPHost),
		app.WithRetriever(client),
		app.WithSigmaMin(cfg.SigmaMin),
		app.WithLogger(log),
		app.WithPeriodogramOptions(opts...),
	)
	return svc, client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mulens:", err)
		stop()
		os.Exit(1)
	}
}
