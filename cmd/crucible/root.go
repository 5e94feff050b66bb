package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible"
	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/gridgraph"
)

const defaultInput = "./inputs/day17.txt"

type rootFlags struct {
	configPath string
	heading    string
	logLevel   string
	logFormat  string
	ragged     bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "crucible [input]",
		Short: "Cheapest run-length constrained crossing of a digit cost grid",
		Long: `crucible loads a grid with one digit per cell and, for every configured part,
prints the minimal total cost of moving from the start cell to the target cell
when straight runs are limited (Part 1: at most 3 steps) or bounded on both
sides (Part 2: 4 to 10 steps).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, input, f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.heading, "heading", "", "initial heading: up|down|left|right|none (overrides config)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "text|json")
	cmd.Flags().BoolVar(&f.ragged, "ragged", false, "accept rows of differing lengths")

	return cmd
}

func run(cmd *cobra.Command, input string, f rootFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.heading != "" {
		cfg.Heading = strings.ToLower(f.heading)
	}
	if f.logLevel != "" {
		cfg.LogLevel = strings.ToLower(f.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, f.logFormat)
	if err != nil {
		return err
	}

	gridOpts := gridgraph.DefaultGridOptions()
	gridOpts.Rectangular = !f.ragged
	g, err := gridgraph.LoadFile(input, gridOpts)
	if err != nil {
		return err
	}
	logger.Debug("grid loaded", "path", input, "rows", g.Height(), "cols", g.Width())

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = logger

	rep, err := crucible.Solve(cmd.Context(), g, opts)
	if err != nil {
		return err
	}
	_, err = rep.WriteTo(cmd.OutOrStdout())

	return err
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	}

	return nil, fmt.Errorf("unknown log format %q", format)
}
