// Package cmd implements the bootc command line.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hassan/bootc/internal/config"
	"github.com/hassan/bootc/internal/diag"
)

// ErrFailed is returned when a command reported diagnostics. The
// diagnostics themselves have been printed already.
var ErrFailed = errors.New("compilation failed")

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the bootc command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bootc",
		Short: "Bootstrap compiler front end",
		Long: `bootc tokenizes and parses source files of the bootstrap language.

Settings are read from --config, or from bootc.toml, bootc.yaml or
bootc.yml in the current directory when present.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: bootc.toml or bootc.yaml in the current directory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		a.newTokensCommand(),
		a.newParseCommand(),
		a.newWatchCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line and stops on an interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	level, err := a.cfg.LogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "path", a.cfg.Path, "rule", a.cfg.Parser.Rule)
	return nil
}

// printer returns the diagnostic printer for cmd's error stream.
func (a *app) printer(cmd *cobra.Command) *diag.Printer {
	return diag.NewPrinter(cmd.ErrOrStderr(), a.cfg.ColorMode(), a.cfg.Diagnostics.Context)
}
