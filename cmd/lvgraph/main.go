// Command lvgraph loads an undirected graph from a text edge list and runs
// the lvgraph algorithms over it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgraph/converters"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/internal/config"
)

var version = "dev"

// app carries the per-invocation state shared by every subcommand.
type app struct {
	cfgFile   string
	input     string
	output    string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	a := newApp()
	if err := a.rootCmd().Execute(); err != nil {
		a.logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newApp returns an app whose logger is usable before flags are parsed.
func newApp() *app {
	return &app{logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvgraph",
		Short:         "lvgraph: undirected graph toolkit",
		Long:          "Load an undirected, weighted graph from an edge list and traverse, measure or export it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./lvgraph.yaml)")
	root.PersistentFlags().StringVarP(&a.input, "input", "i", "-", "graph file, or - for stdin")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format (text, yaml)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log output format (text, json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.infoCmd(),
		a.saveCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.cycleCmd(),
		a.pathCmd(),
		a.mstCmd(),
		a.componentsCmd(),
		a.distanceCmd(),
		a.matrixCmd(),
		a.listCmd(),
		a.exportCmd(),
		a.generateCmd(),
		versionCmd(),
	)

	return root
}

// setup merges config file, environment and explicit flags (flags win) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := parseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Log.Format {
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	default:
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
	}
	a.cfg = cfg

	return nil
}

// loadGraph reads the configured input: a file path, or stdin for "-".
func (a *app) loadGraph(cmd *cobra.Command) (*core.Graph[string], error) {
	var r io.Reader = cmd.InOrStdin()
	if a.cfg.Input != "-" {
		f, err := os.Open(a.cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	g, err := converters.ReadText(r)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", a.cfg.Input, err)
	}
	a.logger.Debug("graph loaded", "input", a.cfg.Input, "nodes", g.Order(), "edges", g.Size())

	return g, nil
}

// emit writes report as YAML when --output yaml is selected, text otherwise.
func (a *app) emit(cmd *cobra.Command, report any, text string) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output.Format != "yaml" {
		_, err := io.WriteString(out, text)
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return enc.Close()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvgraph %s\n", version)
		},
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (use: debug, info, warn, error)", s)
	}
}
