package main

import (
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist both documents of an event under the data directory",
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	key, err := eventKey()
	if err != nil {
		return err
	}

	svc, client := newService()
	defer func() { _ = client.Close() }()

	results, err := svc.Save(cmd.Context(), key)
	if err != nil {
		return err
	}
	for _, r := range results {
		cmd.Printf("%s %s\n", r.Path, r.Outcome)
	}
	return nil
}
