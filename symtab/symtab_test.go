package symtab_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/symtab"
	"github.com/susji/cminus/testers/assert"
	"github.com/susji/cminus/testers/require"
	"github.com/susji/cminus/types"
)

func vardecl(lineno int, name string, t types.Type) *node.VarDecl {
	return &node.VarDecl{Common: node.At(lineno, t), Name: name}
}

func TestChainedLookup(t *testing.T) {
	global := symtab.NewGlobal()
	fn := &node.FunDecl{Common: node.At(2, types.TYPE_VOID), Name: "f"}
	global.Insert("x", types.TYPE_INT, symtab.SYM_VARIABLE, 1, vardecl(1, "x", types.TYPE_INT))
	global.Insert("f", types.TYPE_VOID, symtab.SYM_FUNCTION, 2, fn)
	fscope := global.NewChild("f", fn)
	inner := fscope.NewChild("f", fn)
	inner.Insert("y", types.TYPE_INT_ARRAY, symtab.SYM_VARIABLE, 3, vardecl(3, "y", types.TYPE_INT_ARRAY))

	assert.Equal(t, 2, inner.Depth)
	assert.True(t, inner.Global() == global)
	assert.True(t, global.IsGlobal())
	assert.False(t, inner.IsGlobal())

	x := inner.LookupKind("x", symtab.SYM_VARIABLE)
	require.NotNil(t, x)
	assert.Equal(t, 1, x.Lineno)
	assert.Nil(t, inner.LookupKind("f", symtab.SYM_VARIABLE))
	assert.NotNil(t, inner.LookupKind("f", symtab.SYM_FUNCTION))
	assert.Nil(t, fscope.LookupKind("y", symtab.SYM_VARIABLE))
	assert.Nil(t, inner.LookupLocal("x"))
	assert.NotNil(t, inner.LookupLocal("y"))
}

func TestPlaceholderSharesName(t *testing.T) {
	global := symtab.NewGlobal()
	global.Insert("g", types.TYPE_INT, symtab.SYM_VARIABLE, 1, vardecl(1, "g", types.TYPE_INT))
	ph := global.Insert("g", types.TYPE_UNDETERMINED, symtab.SYM_FUNCTION, 5, nil)

	assert.True(t, ph.Placeholder())
	assert.Equal(t, symtab.State(symtab.STATE_UNDECLARED), ph.State)
	assert.Equal(t, symtab.SymbolKind(symtab.SYM_VARIABLE), global.LookupLocal("g").Kind)
	assert.True(t, global.LookupKind("g", symtab.SYM_FUNCTION) == ph)
	assert.Equal(t, 2, global.Symbols.Len())
}

func TestRedefinition(t *testing.T) {
	global := symtab.NewGlobal()
	fn := &node.FunDecl{Common: node.At(1, types.TYPE_INT), Name: "f"}
	sym := global.Insert("f", types.TYPE_INT, symtab.SYM_FUNCTION, 1, fn)
	sym.Scope = global.NewChild("f", fn)

	sym.MarkRedefined(4)
	sym.MarkRedefined(9)
	assert.Equal(t, symtab.State(symtab.STATE_REDEFINED), sym.State)
	assert.Equal(t, symtab.State(symtab.STATE_REDEFINED), sym.Scope.State)
	assert.Equal(t, []int{1, 4, 9}, sym.PriorLines())

	ph := global.Insert("u", types.TYPE_UNDETERMINED, symtab.SYM_FUNCTION, 2, nil)
	ph.MarkRedefined(3)
	assert.Equal(t, symtab.State(symtab.STATE_UNDECLARED), ph.State)
	assert.Equal(t, []int{2, 3}, ph.PriorLines())
}

func TestReferences(t *testing.T) {
	global := symtab.NewGlobal()
	sym := global.Insert("x", types.TYPE_INT, symtab.SYM_VARIABLE, 3, vardecl(3, "x", types.TYPE_INT))
	sym.Reference(5)
	sym.Reference(5)
	sym.Reference(8)
	assert.Equal(t, []int{3, 5, 5, 8}, sym.Lines)
}

func TestDumps(t *testing.T) {
	global := symtab.NewGlobal()
	fn := &node.FunDecl{
		Common: node.At(2, types.TYPE_INT),
		Name:   "main",
		Params: []*node.Param{{Common: node.At(2, types.TYPE_INT_ARRAY), Name: "arr"}},
	}
	global.Insert("x", types.TYPE_INT, symtab.SYM_VARIABLE, 1, vardecl(1, "x", types.TYPE_INT))
	sym := global.Insert("main", types.TYPE_INT, symtab.SYM_FUNCTION, 2, fn)
	sym.Scope = global.NewChild("main", fn)
	sym.Scope.Insert("arr", types.TYPE_INT_ARRAY, symtab.SYM_VARIABLE, 2, fn.Params[0])
	global.Symbols.Lookup("x").Reference(4)

	b := &bytes.Buffer{}
	require.Nil(t, symtab.DumpSymbols(b, global))
	out := b.String()
	t.Log("\n" + out)
	assert.True(t, strings.HasPrefix(out, "Symbol Name"))
	assert.Equal(t, []string{"x", "Variable", "int", "global", "declared", "1", "4"},
		strings.Fields(strings.Split(out, "\n")[2]))
	assert.Equal(t, []string{"arr", "Variable", "int[]", "main", "declared", "2"},
		strings.Fields(strings.Split(out, "\n")[4]))

	b.Reset()
	require.Nil(t, symtab.DumpFunctions(b, global))
	rows := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Equal(t, 4, len(rows))
	assert.Equal(t, []string{"main", "int"}, strings.Fields(rows[2]))
	assert.Equal(t, []string{"arr", "int[]"}, strings.Fields(rows[3]))

	b.Reset()
	require.Nil(t, symtab.DumpGlobals(b, global))
	rows = strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, 4, len(rows))

	sym.MarkRedefined(7)
	b.Reset()
	require.Nil(t, symtab.DumpScopes(b, global))
	rows = strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Equal(t, 3, len(rows))
	assert.Equal(t, []string{"main", "(redefined)", "1", "arr", "int[]"}, strings.Fields(rows[2]))
}
