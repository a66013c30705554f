package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/agentic-research/navtree/api"
	"github.com/agentic-research/navtree/internal/ingest"
	"github.com/agentic-research/navtree/internal/linter"
	"github.com/spf13/cobra"
)

var (
	inspectQuery string
	inspectLint  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [data.json]",
	Short: "Summarize, query or lint a generated document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Output
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		out := cmd.OutOrStdout()
		if inspectLint {
			return lintDocument(out, raw)
		}
		if inspectQuery != "" {
			matches, err := ingest.QueryDocument(raw, inspectQuery)
			if err != nil {
				return err
			}
			for _, m := range matches {
				b, err := json.MarshalIndent(m, "", "  ")
				if err != nil {
					return fmt.Errorf("encode match: %w", err)
				}
				fmt.Fprintln(out, string(b))
			}
			return nil
		}

		s, err := ingest.Summarize(raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "document:      %s\n", path)
		fmt.Fprintf(out, "categories:    %d (+%d placeholders)\n", s.Categories, s.Sentinels)
		fmt.Fprintf(out, "subcategories: %d\n", s.Subcategories)
		fmt.Fprintf(out, "subclasses:    %d\n", s.Subclasses)
		fmt.Fprintf(out, "items:         %d\n", s.Items)
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectLint, "lint", false, "Check the document structure and fail on any problem")
	inspectCmd.Flags().StringVarP(&inspectQuery, "query", "q", "", "JSONPath selector, e.g. '$.categories[*].id'")
	rootCmd.AddCommand(inspectCmd)
}

func lintDocument(out io.Writer, raw []byte) error {
	var doc api.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	diags := linter.Lint(&doc)
	for _, d := range diags {
		fmt.Fprintln(out, d.String())
	}
	if len(diags) > 0 {
		return fmt.Errorf("document has %d problem(s)", len(diags))
	}
	fmt.Fprintln(out, "ok")
	return nil
}
