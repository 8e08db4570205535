package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/susji/cminus/analyze"
	"github.com/susji/cminus/node"
)

func (c *config) analyze(cmd *cobra.Command, fn string, nodes []node.Node, listing io.Writer) error {
	a := analyze.New(fn, listing)
	a.Trace = c.trace
	errs := a.Analyze(nodes)
	for _, err := range errs {
		var se *analyze.SemanticError
		if errors.As(err, &se) {
			c.note(cmd, "%s: %s", se.Where(), errors.Unwrap(se))
		}
	}
	if a.Failed() {
		return errAnalysisFailed
	}
	c.note(cmd, "%s: no semantic errors", fn)
	return nil
}

func newCheckCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <source.cm>",
		Short: "Run semantic analysis on a C-minus source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			nodes, err := cfg.frontend(cmd, args[0], src)
			if err != nil {
				return err
			}
			listing, done, err := cfg.openListing(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := done(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			return cfg.analyze(cmd, args[0], nodes, listing)
		},
	}
	cmd.Flags().BoolVar(&cfg.trace, "trace", false, "dump the symbol tables after building scopes")
	return cmd
}

// newReplCmd reads one program per line and checks each of them.
func newReplCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check C-minus programs typed one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			listing, done, err := cfg.openListing(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := done(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			out := cmd.OutOrStdout()
			r := bufio.NewReader(cmd.InOrStdin())
			for i := 0; ; i++ {
				fmt.Fprintf(out, "[%d] >> ", i)
				line, rerr := r.ReadString('\n')
				if line = strings.TrimSpace(line); line != "" {
					fn := fmt.Sprintf("<line %d>", i)
					if nodes, ferr := cfg.frontend(cmd, fn, line); ferr == nil {
						if aerr := cfg.analyze(cmd, fn, nodes, listing); aerr != nil {
							perr(cmd, "%s", aerr)
						}
					}
				}
				if rerr == io.EOF {
					fmt.Fprintln(out)
					return nil
				}
				if rerr != nil {
					return rerr
				}
			}
		},
	}
	cmd.Flags().BoolVar(&cfg.trace, "trace", false, "dump the symbol tables after building scopes")
	return cmd
}
