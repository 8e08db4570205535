package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/susji/cminus/lex"
	"github.com/susji/cminus/node"
	"github.com/susji/cminus/parse"
)

var (
	errFrontend       = errors.New("source did not lex or parse")
	errAnalysisFailed = errors.New("semantic analysis failed")
)

// config is filled from the command-line flags.
type config struct {
	listing string
	verbose bool
	trace   bool
	types   bool
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:   "cminus",
		Short: "C-minus front end and semantic analyzer",
		Long: `cminus lexes, parses and checks C-minus programs.

Commands:
  lex    Dump the tokens of a source file
  parse  Dump the syntax tree of a source file
  check  Run semantic analysis on a source file
  repl   Check programs typed one per line
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfg.listing, "listing", "o", "", "file receiving diagnostics (default stdout)")
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "print progress notes")
	root.AddCommand(
		newLexCmd(cfg),
		newParseCmd(cfg),
		newCheckCmd(cfg),
		newReplCmd(cfg))
	return root
}

func perr(cmd *cobra.Command, f string, va ...interface{}) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: "+f+"\n", va...)
}

func (c *config) note(cmd *cobra.Command, f string, va ...interface{}) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[] "+f+"\n", va...)
}

// openListing returns where diagnostics should go. The returned function
// must be called when done.
func (c *config) openListing(cmd *cobra.Command) (io.Writer, func() error, error) {
	if c.listing == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(c.listing)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func readSource(fn string) (string, error) {
	src, err := os.ReadFile(fn)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", fn, err)
	}
	return string(src), nil
}

// frontend lexes and parses src. Analysis must not run on a program which
// did not parse, so every error is printed and errFrontend returned.
func (c *config) frontend(cmd *cobra.Command, fn, src string) ([]node.Node, error) {
	toks, lexerrs := lex.Lex(fn, src)
	if len(lexerrs) > 0 {
		for _, err := range lexerrs {
			perr(cmd, "lex: %s", err)
		}
		return nil, errFrontend
	}
	c.note(cmd, "%d tokens", toks.Len())
	p := parse.NewFile(fn)
	if err := p.Parse(toks); err != nil {
		for _, e := range p.Errors() {
			perr(cmd, "parse: %s", e)
		}
		return nil, errFrontend
	}
	c.note(cmd, "%d nodes", len(p.Nodes()))
	return p.Nodes(), nil
}
