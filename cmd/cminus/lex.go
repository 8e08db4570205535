package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/susji/cminus/lex"
)

func newLexCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "lex <source.cm>",
		Short: "Dump the tokens of a C-minus source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks, errs := lex.Lex(args[0], src)
			for _, err := range errs {
				perr(cmd, "lex: %s", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), toks)
			cfg.note(cmd, "%d tokens, %d errors", toks.Len(), len(errs))
			if len(errs) > 0 {
				return errFrontend
			}
			return nil
		},
	}
}
