package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/agentic-research/navtree/internal/config"
	"github.com/agentic-research/navtree/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// cfg is populated by the root pre-run hook before any subcommand runs.
	cfg = config.Default()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to an HCL config file (default: "+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")
}

var rootCmd = &cobra.Command{
	Use:           "navtree",
	Short:         "Convert portal CSV exports into the website navigation data file",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load()

		loaded, err := loadConfig(configPath, cmd.Flags())
		if err != nil {
			return err
		}

		logging.Setup(loaded.LogLevel, loaded.LogFormat)
		if envErr == nil {
			slog.Debug("loaded .env file")
		}
		cfg = loaded
		return nil
	},
}

// loadConfig layers the persistent flags over the loaded file and
// environment, then validates the result once.
func loadConfig(path string, flags *pflag.FlagSet) (*config.Config, error) {
	loaded, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.Changed("log-level") {
		loaded.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		loaded.LogFormat, _ = flags.GetString("log-format")
	}
	if err := loaded.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return loaded, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("navtree failed", "error", err)
		os.Exit(1)
	}
}
