package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/periodicdata/core/normalize"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List every known row label with its record key and rule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LABEL\tKEY\tRULE")
		for _, field := range normalize.Fields() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", field.Label, field.Key(), field.Rule)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
