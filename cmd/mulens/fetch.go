package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/mulens/internal/domain/model"
)

var flagKind string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print one event document, from cache if present",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&flagKind, "kind", string(model.KindPhotometry), "document kind: phot or params")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	key, err := eventKey()
	if err != nil {
		return err
	}
	kind := model.DocKind(flagKind)
	if kind != model.KindPhotometry && kind != model.KindParameters {
		return fmt.Errorf("unknown document kind %q", flagKind)
	}

	svc, client := newService()
	defer func() { _ = client.Close() }()

	doc, err := svc.Fetch(cmd.Context(), key, kind)
	if err != nil {
		return err
	}
	cmd.Println(doc.Content)
	return nil
}
