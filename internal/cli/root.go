// Package cli wires the algoreplay commands: one per generator, each
// printing its trace as text or YAML or playing it in the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay"
	"github.com/katalvlaran/algoreplay/internal/config"
	"github.com/katalvlaran/algoreplay/internal/logging"
	"github.com/katalvlaran/algoreplay/trace"
)

// Exit codes.
const (
	ExitSuccess   = 0
	ExitUserError = 1
	ExitSysError  = 2
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// errSystem marks failures that are not the user's fault.
var errSystem = errors.New("algoreplay: internal error")

// app holds flag values and the resources built in PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool
	format     string
	brief      bool
	play       bool
	maxSteps   int
	speed      float64

	cfg config.Config
	log *zap.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "algoreplay",
		Short: "Record algorithm runs as traces and replay them step by step",
		Long: `algoreplay runs a classic algorithm on a small input, records every
decision as an immutable snapshot, and prints the trace or plays it back
in the terminal with play, pause, step and reset.`,
		Version:       algoreplay.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync(a.log)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: ./algoreplay.yaml if present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	pf.StringVarP(&a.format, "format", "f", FormatText, "output format: text or yaml")
	pf.BoolVar(&a.brief, "brief", false, "text format: print step headers only")
	pf.BoolVarP(&a.play, "play", "p", false, "play the trace in the terminal instead of printing it")
	pf.IntVar(&a.maxSteps, "max-steps", 0, "refuse traces longer than this (default from config)")
	pf.Float64Var(&a.speed, "speed", 0, "playback speed factor (default from config)")

	root.AddCommand(
		newVersionCmd(),
		newSubsetsCmd(a),
		newParensCmd(a),
		newLettersCmd(a),
		newIslandsCmd(a),
		newSpreadCmd(a),
		newSubarrayCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}
	switch a.format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q (want text or yaml)", trace.ErrInvalidInput, a.format)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", trace.ErrInvalidInput, err)
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = a.maxSteps
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = a.speed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(a.verbose)
	if err != nil {
		return fmt.Errorf("%w: %w", errSystem, err)
	}
	a.log = log
	a.log.Debug("configuration loaded",
		zap.String("file", cfg.File),
		zap.Duration("short", cfg.Pacing.Short),
		zap.Duration("long", cfg.Pacing.Long),
		zap.Float64("speed", cfg.Speed),
		zap.Int("max_steps", cfg.MaxSteps),
		zap.Int("max_cells", cfg.MaxCells))
	return nil
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitCode(err)
}

// ExitCode maps err to ExitUserError or ExitSysError. Input errors and
// command-line mistakes are the user's; broken invariants and I/O are not.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, trace.ErrContractViolation), errors.Is(err, errSystem):
		return ExitSysError
	default:
		return ExitUserError
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the algoreplay version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "algoreplay", algoreplay.Version)
		},
	}
}
