package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hassan/bootc/internal/diag"
	"github.com/hassan/bootc/internal/module"
)

func (a *app) newTokensCommand() *cobra.Command {
	var trivia bool

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Print one token per line as LINE:COL TOKEN.

Whitespace and comments are hidden unless --trivia is given. Lexical errors
are printed as diagnostics and make the exit status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := module.ReadFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("tokenized", "file", m.Filename, "tokens", len(m.Tokens), "errors", m.ErrorCount)

			out := cmd.OutOrStdout()
			for i, tok := range m.Tokens {
				if tok.IsTrivia() && !trivia {
					continue
				}
				pos := m.TokenPosition(i)
				if _, err := fmt.Fprintf(out, "%d:%d\t%s\n", pos.Line, pos.Column, tok.Dump(m.Source)); err != nil {
					return err
				}
			}

			p := a.printer(cmd)
			for _, tok := range m.Errors() {
				p.Report(diag.FromToken(m, tok))
			}
			if err := p.Err(); err != nil {
				return err
			}
			if m.ErrorCount > 0 {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trivia, "trivia", false, "include whitespace and comment tokens")
	return cmd
}
