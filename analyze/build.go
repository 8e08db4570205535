package analyze

import (
	"fmt"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/symtab"
	"github.com/susji/cminus/types"
)

// Built-in functions live at line zero.
const builtinLineno = 0

// declareBuiltins inserts "int input(void)" and "void output(int value)"
// into the global scope.
func (s *Analyzer) declareBuiltins() {
	global := s.res.Global
	input := &node.FunDecl{
		Common: node.At(builtinLineno, types.TYPE_INT),
		Name:   "input",
		Params: []*node.Param{{
			Common:   node.At(builtinLineno, types.TYPE_VOID),
			NoParams: true,
		}},
	}
	value := &node.Param{
		Common: node.At(builtinLineno, types.TYPE_INT),
		Name:   "value",
	}
	output := &node.FunDecl{
		Common: node.At(builtinLineno, types.TYPE_VOID),
		Name:   "output",
		Params: []*node.Param{value},
	}
	global.Insert(input.Name, input.Type(), symtab.SYM_FUNCTION, builtinLineno, input)
	sym := global.Insert(output.Name, output.Type(), symtab.SYM_FUNCTION, builtinLineno, output)
	sym.Scope = global.NewChild(output.Name, output)
	sym.Scope.Insert(value.Name, value.Type(), symtab.SYM_VARIABLE, builtinLineno, value)
}

// build is the first pass. It creates the scope tree, binds every
// declaration, and resolves every use of a name.
func (s *Analyzer) build(nodes []node.Node) {
	s.declareBuiltins()
	node.TraverseAll(nodes, s.insertNode, s.scopeOut)
	if s.scope != s.res.Global {
		panic(fmt.Sprintf("first pass ended in %s", s.scope))
	}
}

// redefined reports a declaration of name at lineno if the name already
// exists in scope. It returns true if the existing record is a live
// declaration, in which case nothing should be inserted.
func (s *Analyzer) redefined(scope *symtab.Scope, name string, lineno int) bool {
	prev := scope.LookupLocal(name)
	if prev == nil {
		return false
	}
	s.report(&SemanticError{
		Fn:      s.fn,
		Lineno:  lineno,
		Name:    name,
		Prior:   prev.PriorLines(),
		Wrapped: ErrRedefined,
	})
	prev.MarkRedefined(lineno)
	return !prev.Placeholder()
}

func (s *Analyzer) declareVariable(name string, t types.Type, n node.Node) {
	if t.IsVoidStorage() {
		s.errorf(n.Lineno(), name, ErrVoidVariable)
	}
	if s.redefined(s.scope, name, n.Lineno()) {
		return
	}
	s.scope.Insert(name, t, symtab.SYM_VARIABLE, n.Lineno(), n)
}

func (s *Analyzer) enterScope(n node.Node, scope *symtab.Scope) {
	s.res.setScope(n, scope)
	s.scope = scope
}

func (s *Analyzer) insertNode(n node.Node) {
	switch t := n.(type) {
	case *node.VarDecl:
		s.declareVariable(t.Name, t.Type(), t)
	case *node.FunDecl:
		if !s.scope.IsGlobal() {
			panic(fmt.Sprintf("function %q declared in %s", t.Name, s.scope))
		}
		scope := s.scope.NewChild(t.Name, t)
		if !s.redefined(s.scope, t.Name, t.Lineno()) {
			sym := s.scope.Insert(t.Name, t.Type(), symtab.SYM_FUNCTION, t.Lineno(), t)
			sym.Scope = scope
		}
		s.enterScope(t, scope)
	case *node.Param:
		if t.NoParams {
			return
		}
		s.declareVariable(t.Name, t.Type(), t)
	case *node.Compound:
		// A function body shares its scope with the parameters.
		if t.FuncBody {
			return
		}
		s.enterScope(t, s.scope.NewChild(s.scope.Name, s.scope.Func))
	case *node.Call:
		global := s.res.Global
		if sym := global.Symbols.LookupKind(t.Name, symtab.SYM_FUNCTION); sym != nil {
			sym.Reference(t.Lineno())
			return
		}
		s.errorf(t.Lineno(), t.Name, ErrUndeclaredFunc)
		global.Insert(t.Name, types.TYPE_UNDETERMINED, symtab.SYM_FUNCTION, t.Lineno(), nil)
	case *node.VarAccess:
		if sym := s.scope.LookupKind(t.Name, symtab.SYM_VARIABLE); sym != nil {
			sym.Reference(t.Lineno())
			return
		}
		s.errorf(t.Lineno(), t.Name, ErrUndeclaredVar)
		s.scope.Insert(t.Name, types.TYPE_UNDETERMINED, symtab.SYM_VARIABLE, t.Lineno(), nil)
	case *node.If, *node.While, *node.Return, *node.Assign, *node.BinOp, *node.Const:
	default:
		panic(fmt.Sprintf("insertNode: unhandled %T", t))
	}
}

func (s *Analyzer) scopeOut(n node.Node) {
	if scope := s.res.ScopeOf(n); scope != nil {
		s.scope = scope.Parent
	}
}
