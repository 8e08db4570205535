package symtab

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/susji/cminus/node"
)

func table(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	return tw
}

func lines(ls []int) string {
	b := &strings.Builder{}
	for i, l := range ls {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%d", l)
	}
	return b.String()
}

// DumpSymbols lists every symbol of every scope under global.
func DumpSymbols(w io.Writer, global *Scope) error {
	tw := table(w, "Symbol Name", "Symbol Kind", "Symbol Type", "Scope Name", "State", "Line Numbers")
	global.Walk(func(s *Scope) {
		for _, sym := range s.Symbols.Symbols() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				sym.Name, sym.Kind, sym.Type, s.Name, sym.State, lines(sym.Lines))
		}
	})
	return tw.Flush()
}

// DumpFunctions lists the declared functions with their parameters.
func DumpFunctions(w io.Writer, global *Scope) error {
	tw := table(w, "Function Name", "Return Type", "Parameter Name", "Parameter Type")
	for _, sym := range global.Symbols.Symbols() {
		if sym.Kind != SYM_FUNCTION {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\t\n", sym.Name, sym.Type)
		fd, ok := sym.Node.(*node.FunDecl)
		if !ok {
			continue
		}
		for _, param := range fd.Params {
			if param.NoParams {
				fmt.Fprintf(tw, "\t\t\t%s\n", param.Type())
				continue
			}
			fmt.Fprintf(tw, "\t\t%s\t%s\n", param.Name, param.Type())
		}
	}
	return tw.Flush()
}

// DumpGlobals lists the symbols declared directly in the global scope.
func DumpGlobals(w io.Writer, global *Scope) error {
	tw := table(w, "ID Name", "ID Kind", "Data Type", "State")
	for _, sym := range global.Symbols.Symbols() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sym.Name, sym.Kind, sym.Type, sym.State)
	}
	return tw.Flush()
}

// DumpScopes lists the symbols of every non-global scope, tagged with the
// scope's nesting level.
func DumpScopes(w io.Writer, global *Scope) error {
	tw := table(w, "Scope Name", "Nested Level", "Symbol Name", "Symbol Type")
	global.Walk(func(s *Scope) {
		if s.IsGlobal() || s.Symbols.Len() == 0 {
			return
		}
		name := s.Name
		if s.State == STATE_REDEFINED {
			name += " (redefined)"
		}
		for _, sym := range s.Symbols.Symbols() {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", name, s.Depth, sym.Name, sym.Type)
		}
	})
	return tw.Flush()
}
