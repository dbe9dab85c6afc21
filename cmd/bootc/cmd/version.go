package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hassan/bootc/internal/version"
)

func newVersionCommand() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the compiler version",
		Args:  cobra.NoArgs,
		// Printing the version must work even with a broken or
		// incompatible configuration file.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if check != "" {
				ok, err := version.Satisfies(check)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s satisfies %q: %t\n", version.Version, check, ok)
				if !ok {
					return ErrFailed
				}
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "bootc %s (%s %s/%s)\n", version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "exit with status 1 unless the version satisfies this constraint")
	return cmd
}
