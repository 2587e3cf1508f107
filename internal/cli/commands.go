package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/league-leaderboard/internal/loader"
	"github.com/pfrederiksen/league-leaderboard/internal/logger"
	"github.com/pfrederiksen/league-leaderboard/internal/render"
	"github.com/pfrederiksen/league-leaderboard/internal/web"
)

type showOptions struct {
	format  string
	output  string
	group   string
	sort    string
	file    string
	verbose bool
}

func newShowCmd(root *rootOptions) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json, html or xlsx")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.group, "group", "", "Only show players from one group (A, B, C or D)")
	cmd.Flags().StringVar(&opts.sort, "sort", string(SortByRank), "Sort order: rank, name or group")
	cmd.Flags().StringVar(&opts.file, "file", "", "Read a downloaded export instead of fetching the sheet")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runShow is the main command logic
func runShow(cmd *cobra.Command, root *rootOptions, opts *showOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	order, err := ParseSortOrder(opts.sort)
	if err != nil {
		return err
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr(), opts.verbose)
	if err != nil {
		return err
	}
	roster := cfg.Roster()

	if opts.verbose {
		if opts.file != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Reading export from %s\n", opts.file)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Fetching leaderboard from %s\n", cfg.Sheet.URL)
		}
	}

	snap, err := root.newLoader(cfg, opts.file, log, nil).Load(cmd.Context())
	if err != nil {
		return loadError(cmd.ErrOrStderr(), err)
	}

	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Extracted %d players across %d weeks\n", len(snap.Players), len(snap.WeekHeaders))
	}

	view, err := selectPlayers(snap, roster, opts.group, order)
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), opts.output, format, view, roster)
}

func newChartCmd(root *rootOptions) *cobra.Command {
	var output, file string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write a PNG bar chart of player totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}

			snap, err := root.newLoader(cfg, file, log, nil).Load(cmd.Context())
			if err != nil {
				return loadError(cmd.ErrOrStderr(), err)
			}

			return writeFile(output, func(f *os.File) error {
				return render.Chart(f, snap)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (required)")
	cmd.Flags().StringVar(&file, "file", "", "Read a downloaded export instead of fetching the sheet")
	cmd.MarkFlagRequired("output")

	return cmd
}

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leaderboard page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := web.NewServer(root.newLoader(cfg, "", log, loader.NewMetrics(reg)), web.Options{
				Roster:         cfg.Roster(),
				Logger:         log,
				Gatherer:       reg,
				RequestTimeout: cfg.Server.RequestTimeout,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("Serving leaderboard", logger.Fields{"addr": cfg.Server.Addr, "sheet": cfg.Sheet.URL})
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")

	return cmd
}

