package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newParseCommand() *cobra.Command {
	var (
		rule       string
		resolveOps bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Print the syntax tree of every file",
		Long: `Parse every file and print its syntax tree, one statement per line.

Files are parsed concurrently; output and diagnostics are printed in
argument order. The exit status is 1 if any file has an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(rule, cmd.Flags().Changed("resolve"), resolveOps)
			if err != nil {
				return err
			}
			return a.runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&rule, "rule", "", "entry rule: program, stmt, expr or cexpr (default from config)")
	cmd.Flags().BoolVar(&resolveOps, "resolve", false, "resolve operator precedence before printing")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, paths []string, opts compileOptions) error {
	units := make([]*unit, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u, err := a.compile(path, opts)
			if err != nil {
				return err
			}
			units[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := a.printer(cmd)
	failed := false
	for _, u := range units {
		if err := emit(cmd.OutOrStdout(), p, u, len(units) > 1); err != nil {
			return err
		}
		failed = failed || u.failed()
	}

	if failed {
		return ErrFailed
	}
	return nil
}
