// Package cli wires the aoc command tree: running solvers, fetching inputs,
// listing what is registered and storing the session cookie.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/internal/logging"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgPath string
	verbose bool

	cfg config.Config
	log *slog.Logger

	// stdin is read by "session set" when it is not a terminal.
	stdin io.Reader
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdin)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	a := &app{stdin: stdin}

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code solutions runner",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath(), "path to the YAML config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		runCmd(a),
		fetchCmd(a),
		listCmd(),
		sessionCmd(a),
	)
	return cmd
}

// setup loads configuration and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logging.New(level, logOut)
	a.log.Debug("config loaded", "path", a.cfgPath, "cache_dir", cfg.CacheDir, "input_dir", cfg.InputDir)
	return nil
}
