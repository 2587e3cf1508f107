package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/league-leaderboard/internal/config"
	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/league-leaderboard/internal/loader"
	"github.com/pfrederiksen/league-leaderboard/internal/logger"
	"github.com/pfrederiksen/league-leaderboard/internal/render"
	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
	"github.com/pfrederiksen/league-leaderboard/internal/source"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath   string
	sheetURL     string
	sourceFormat string
	logLevel     string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "league-leaderboard",
		Short: "Show the golf league leaderboard from the published sheet",
		Long: `A CLI tool to fetch the league's published spreadsheet export and
derive a ranked leaderboard from it. Every run re-fetches the sheet; nothing is cached.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.sheetURL, "sheet-url", "", "Published sheet export URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.sourceFormat, "format-source", "", "Export format of the sheet: csv, html or xlsx")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newChartCmd(opts))
	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

// loadConfig reads the config file and environment, then applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if o.sheetURL != "" {
		cfg.Sheet.URL = o.sheetURL
	}
	if o.sourceFormat != "" {
		cfg.Sheet.Format = sheet.Format(o.sourceFormat)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger on stderr and installs it as the default.
func newLogger(cfg *config.Config, stderr io.Writer, verbose bool) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, stderr)
	logger.SetDefault(log)
	return log, nil
}

// newLoader wires a loader for the configured sheet, or for a local export when file
// is non-empty.
func (o *rootOptions) newLoader(cfg *config.Config, file string, log *logger.Logger, metrics *loader.Metrics) *loader.Loader {
	var src loader.Source
	if file != "" {
		src = source.NewFile(file, cfg.Sheet.Format)
	} else {
		src = source.New(cfg.Sheet)
	}
	return loader.New(src, leaderboard.NewExtractor(cfg.Roster()), log, metrics)
}

// loadError maps a failed load to what the user sees. Fetch failures only ever show the
// generic retry message; the cause is already in the logs.
func loadError(stderr io.Writer, err error) error {
	if errors.Is(err, source.ErrFetch) {
		fmt.Fprintln(stderr, render.ErrorMessage)
		return fmt.Errorf("loading leaderboard: %w", source.ErrFetch)
	}
	return fmt.Errorf("loading leaderboard: %w", err)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
