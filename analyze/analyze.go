// package analyze binds every name of a C-minus program to its declaration
// and type-checks the result. It runs in two passes over the syntax tree:
// the first builds the scope tree, the second types each expression.
package analyze

import (
	"fmt"
	"io"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/symtab"
)

// Analyzer maintains the state of one analysis run.
type Analyzer struct {
	fn      string
	listing io.Writer
	errs    []error

	// Trace dumps the symbol tables to the listing after the first pass.
	Trace bool

	// res will contain everything that it's meant to be passed onwards after
	// the analysis stage.
	res *Results

	reporter *Reporter

	// scope is the cursor into the scope tree. It is only moved by the
	// traversal callbacks.
	scope *symtab.Scope
}

// New returns an Analyzer for the source file fn. Diagnostics and trace
// dumps go to listing, which may be nil.
func New(fn string, listing io.Writer) *Analyzer {
	if listing == nil {
		listing = io.Discard
	}
	ret := &Analyzer{fn: fn, listing: listing}
	ret.reset()
	return ret
}

func (s *Analyzer) reset() {
	s.errs = []error{}
	s.reporter = NewReporter(s.listing)
	global := symtab.NewGlobal()
	s.scope = global
	s.res = &Results{
		Global: global,
		Scopes: map[node.Node]*symtab.Scope{},
	}
}

func (s *Analyzer) Results() *Results {
	return s.res
}

// Failed reports whether the last run found any semantic errors. Code
// generation must not proceed if it did.
func (s *Analyzer) Failed() bool {
	return s.reporter.Failed()
}

func (s *Analyzer) errorf(lineno int, name string, err error) {
	s.report(&SemanticError{
		Fn:      s.fn,
		Lineno:  lineno,
		Name:    name,
		Wrapped: err,
	})
}

func (s *Analyzer) report(err *SemanticError) {
	s.errs = append(s.errs, err)
	s.reporter.Report(err)
}

// Analyze runs both passes over the program given as its top-level
// declarations. Every diagnostic is written to the listing and returned.
// Running it again over the same nodes gives the same result.
func (s *Analyzer) Analyze(nodes []node.Node) []error {
	s.reset()
	s.build(nodes)
	if s.Trace {
		// Write errors are ignored like they are for diagnostics.
		_ = s.dump()
	}
	s.check(nodes)
	s.res.Failed = s.reporter.Failed()
	return s.errs
}

func (s *Analyzer) dump() error {
	sections := []struct {
		title string
		dump  func(io.Writer, *symtab.Scope) error
	}{
		{"Symbol Table", symtab.DumpSymbols},
		{"Functions", symtab.DumpFunctions},
		{"Global Symbols", symtab.DumpGlobals},
		{"Scopes", symtab.DumpScopes},
	}
	for _, sec := range sections {
		if _, err := fmt.Fprintf(s.listing, "\n\n< %s >\n", sec.title); err != nil {
			return err
		}
		if err := sec.dump(s.listing, s.res.Global); err != nil {
			return err
		}
	}
	return nil
}
