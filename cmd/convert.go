package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/agentic-research/navtree/internal/icon"
	"github.com/agentic-research/navtree/internal/ingest"
	"github.com/agentic-research/navtree/internal/source"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var (
	convertInputDir string
	convertOutput   string
	convertLayout   string
	convertSQLite   string
	convertHeader   bool
	convertFlatten  bool
	convertRawFilms bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file.csv]",
	Short: "Convert a CSV export into the navigation JSON document",
	Long: `Convert reads one CSV export and writes the nested navigation document.

Without a file argument the newest *.csv in the input directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convertOptions{
			InputDir: cfg.InputDir,
			Output:   cfg.Output,
			SQLite:   cfg.SQLite,
			Icons:    cfg.Icons,
		}
		if len(args) == 1 {
			opts.File = args[0]
		}

		flags := cmd.Flags()
		if flags.Changed("input-dir") {
			opts.InputDir = convertInputDir
		}
		if flags.Changed("output") {
			opts.Output = convertOutput
		}
		if flags.Changed("sqlite") {
			opts.SQLite = convertSQLite
		}

		layoutName := cfg.Layout
		if flags.Changed("layout") {
			layoutName = convertLayout
		}
		layout, err := ingest.LookupLayout(layoutName)
		if err != nil {
			return err
		}
		if flags.Changed("header") {
			layout.Header = convertHeader
		}
		if flags.Changed("flatten-names") {
			layout.FlattenNames = convertFlatten
		}
		if flags.Changed("raw-films") {
			layout.RawFilms = convertRawFilms
		}
		opts.Layout = layout

		_, err = runConvert(opts, slog.Default())
		return err
	},
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertInputDir, "input-dir", "i", "", "Directory searched for the newest *.csv")
	f.StringVarP(&convertOutput, "output", "o", "", "Output JSON document path")
	f.StringVarP(&convertLayout, "layout", "l", "", "CSV layout: portal, basic, legacy")
	f.StringVar(&convertSQLite, "sqlite", "", "Also export the tree into this SQLite database")
	f.BoolVar(&convertHeader, "header", false, "Drop the first row as a header")
	f.BoolVar(&convertFlatten, "flatten-names", false, "Flatten line breaks in item names")
	f.BoolVar(&convertRawFilms, "raw-films", false, "Append the text-only raw-films placeholder")
	rootCmd.AddCommand(convertCmd)
}

// convertOptions is everything one conversion needs, resolved from config
// and flags.
type convertOptions struct {
	// File is an explicit CSV path; empty means discovery in InputDir.
	File     string
	InputDir string
	Output   string
	SQLite   string
	Layout   ingest.Layout
	Icons    []icon.Entry
}

type convertReport struct {
	Input  string
	Result *ingest.Result
	RunID  string
}

// runConvert performs one conversion. Nothing is written unless every row
// has been consumed.
func runConvert(opts convertOptions, log *slog.Logger) (rep *convertReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("conversion panic recovered",
				"panic", r,
				"stack", string(debug.Stack()))
			rep, err = nil, fmt.Errorf("conversion failed: %v", r)
		}
	}()

	start := time.Now()
	input, raw, err := loadInput(opts, log)
	if err != nil {
		return nil, err
	}
	log.Info("converting", "input", input, "layout", opts.Layout.Name)

	engine := ingest.NewEngine(opts.Layout, icon.NewResolver(opts.Icons...))
	engine.Logger = log
	res := engine.Convert(raw)

	outFS := osfs.New(filepath.Dir(opts.Output))
	if err := ingest.WriteDocument(outFS, filepath.Base(opts.Output), res.Document); err != nil {
		return nil, err
	}

	rep = &convertReport{Input: input, Result: res}
	if opts.SQLite != "" {
		runID, err := ingest.ExportSQLite(opts.SQLite, res, opts.Layout.Name)
		if err != nil {
			return nil, fmt.Errorf("sqlite export: %w", err)
		}
		rep.RunID = runID
		log.Info("sqlite export written", "path", opts.SQLite, "run_id", runID)
	}

	log.Info("conversion complete",
		"output", opts.Output,
		"items", res.Items,
		"categories", res.Categories(),
		"skipped_rows", res.Skipped,
		"duration", time.Since(start))
	return rep, nil
}

// loadInput reads the explicit file or the newest CSV of the input directory.
func loadInput(opts convertOptions, log *slog.Logger) (string, string, error) {
	if opts.File != "" {
		fsys := osfs.New(filepath.Dir(opts.File))
		raw, err := source.Read(fsys, filepath.Base(opts.File))
		return opts.File, raw, err
	}

	fsys := osfs.New(opts.InputDir)
	sel, err := source.Find(fsys)
	if err != nil {
		return "", "", err
	}
	if sel.Ambiguous() {
		names := make([]string, len(sel.Candidates))
		for i, c := range sel.Candidates {
			names[i] = c.Name
		}
		log.Warn("multiple CSV files found, using the newest",
			"dir", opts.InputDir,
			"candidates", names,
			"chosen", sel.Chosen.Name)
	}

	raw, err := source.Read(fsys, sel.Chosen.Name)
	return filepath.Join(opts.InputDir, sel.Chosen.Name), raw, err
}
