package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/susji/cminus/analyze"
	"github.com/susji/cminus/node"
)

const indent = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "

func dumper(w io.Writer, withtypes bool) node.NodeCallback {
	return func(n node.Node, depth int) bool {
		ie := 4 * depth
		if ie > len(indent)-1 {
			ie = len(indent) - 1
		}
		if withtypes {
			fmt.Fprintf(w, "%s %s : %s\n", indent[0:ie], node.Label(n), n.Type())
		} else {
			fmt.Fprintf(w, "%s %s\n", indent[0:ie], node.Label(n))
		}
		return true
	}
}

func newParseCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <source.cm>",
		Short: "Dump the syntax tree of a C-minus source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			nodes, err := cfg.frontend(cmd, args[0], src)
			if err != nil {
				return err
			}
			if cfg.types {
				// Diagnostics are not wanted here, only the types.
				a := analyze.New(args[0], nil)
				errs := a.Analyze(nodes)
				cfg.note(cmd, "analysis found %d errors", len(errs))
			}
			out := cmd.OutOrStdout()
			for ni, n := range nodes {
				fmt.Fprintf(out, "{%d}\n", ni)
				node.Walk(n, dumper(out, cfg.types))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&cfg.types, "types", false, "analyze first and show the type of each node")
	return cmd
}
