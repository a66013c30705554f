package cmd

import (
	"fmt"

	"github.com/agentic-research/navtree/internal/ingest"
	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the supported CSV layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s %-7s %-6s %-8s %s\n", "NAME", "COLUMNS", "HEADER", "FLATTEN", "RAW-FILMS")
		for _, name := range ingest.LayoutNames() {
			l, err := ingest.LookupLayout(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-8s %-7d %-6t %-8t %t\n", l.Name, l.Columns, l.Header, l.FlattenNames, l.RawFilms)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
