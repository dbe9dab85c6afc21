package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/hassan/bootc/internal/watch"
)

func (a *app) newWatchCommand() *cobra.Command {
	var (
		rule       string
		resolveOps bool
	)

	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Re-parse files whenever they change",
		Long: `Parse every file once, then parse a file again each time it is saved.
Stops on interrupt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(rule, cmd.Flags().Changed("resolve"), resolveOps)
			if err != nil {
				return err
			}
			return a.runWatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&rule, "rule", "", "entry rule: program, stmt, expr or cexpr (default from config)")
	cmd.Flags().BoolVar(&resolveOps, "resolve", false, "resolve operator precedence before printing")
	return cmd
}

func (a *app) runWatch(cmd *cobra.Command, paths []string, opts compileOptions) error {
	w, err := watch.New(paths, a.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	p := a.printer(cmd)
	header := len(paths) > 1

	// A failing file does not stop the watch; it is reported and re-parsed
	// on the next save.
	run := func(path string) {
		u, err := a.compile(path, opts)
		if err != nil {
			a.logger.Error("compile failed", "file", path, "err", err)
			return
		}
		if err := emit(cmd.OutOrStdout(), p, u, header); err != nil {
			a.logger.Error("writing output", "err", err)
		}
	}

	for _, path := range paths {
		run(path)
	}

	a.logger.Info("watching", "files", len(paths))
	err = w.Run(cmd.Context(), run)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
