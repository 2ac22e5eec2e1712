package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/mulens/internal/domain/periodogram"
)

var (
	flagDOF    int
	flagCutoff bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the model fit and periodogram for an event",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&flagDOF, "dof", 0, "degrees of freedom for the chi-square statistic")
	analyzeCmd.Flags().BoolVar(&flagCutoff, "cutoff", false, "restrict analysis to observations after the epoch cutoff")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	key, err := eventKey()
	if err != nil {
		return err
	}

	var pgramOpts []periodogram.Option
	if flagCutoff {
		pgramOpts = append(pgramOpts, periodogram.WithEpochCutoff(periodogram.DefaultEpochCutoff))
	}
	svc, client := newService(pgramOpts...)
	defer func() { _ = client.Close() }()

	ev, err := svc.Event(cmd.Context(), key)
	if err != nil {
		return err
	}

	cmd.Printf("event      %s\n", ev.Title())
	cmd.Printf("ra, dec    %.3f, %.3f deg\n", ev.RA, ev.Dec)
	cmd.Printf("points     %d\n", ev.Data().Len())

	if ev.Curve() != nil {
		rcs, err := ev.ChiSquare(flagDOF)
		if err != nil {
			return err
		}
		cmd.Printf("chi2/dof   %.3f\n", rcs)
	} else {
		cmd.Println("chi2/dof   n/a (model parameters unavailable)")
	}

	res, err := ev.Periodogram()
	if err != nil {
		return err
	}
	cmd.Printf("peak power %.4f\n", res.PeakPower)
	cmd.Printf("peak freq  %.6f\n", res.PeakFreq)
	cmd.Printf("period     %.4f d\n", res.Period)
	cmd.Printf("fwhm       %.6f\n", res.FWHM)
	cmd.Printf("ref power  %.4f (norm %.8f)\n", res.RefPower, res.RefPowerNorm)
	return nil
}
