package analyze

import (
	"fmt"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/symtab"
	"github.com/susji/cminus/types"
)

// check is the second pass. Every expression node gets its type here.
func (s *Analyzer) check(nodes []node.Node) {
	s.scope = s.res.Global
	node.TraverseAll(nodes, s.scopeIn, s.checkNode)
}

func (s *Analyzer) scopeIn(n node.Node) {
	if scope := s.res.ScopeOf(n); scope != nil {
		s.scope = scope
	}
}

func (s *Analyzer) checkNode(n node.Node) {
	switch t := n.(type) {
	case *node.If:
		s.checkCondition(t, t.Cond)
	case *node.While:
		s.checkCondition(t, t.Cond)
	case *node.Return:
		s.checkReturn(t)
	case *node.Assign:
		if t.To.Type() != t.What.Type() {
			s.errorf(t.Lineno(), "", ErrInvalidAssign)
		}
		t.SetType(t.To.Type())
	case *node.BinOp:
		if t.Left.Type() != types.TYPE_INT || t.Right.Type() != types.TYPE_INT {
			s.errorf(t.Lineno(), "", ErrInvalidOperation)
		}
		t.SetType(t.Left.Type())
	case *node.Call:
		s.checkCall(t)
	case *node.VarAccess:
		s.checkVarAccess(t)
	case *node.Const:
		t.SetType(types.TYPE_INT)
	case *node.FunDecl, *node.VarDecl, *node.Param, *node.Compound:
	default:
		panic(fmt.Sprintf("checkNode: unhandled %T", t))
	}
	if scope := s.res.ScopeOf(n); scope != nil {
		s.scope = scope.Parent
	}
}

func (s *Analyzer) checkCondition(stmt, cond node.Node) {
	if cond.Type() != types.TYPE_INT {
		s.errorf(stmt.Lineno(), "", ErrInvalidCondition)
	}
}

func (s *Analyzer) checkReturn(r *node.Return) {
	fn := s.scope.Func
	if fn == nil {
		panic(fmt.Sprintf("return at line %d outside of a function", r.Lineno()))
	}
	var bad bool
	if fn.Type() == types.TYPE_VOID {
		bad = r.Expr != nil && r.Expr.Type() != types.TYPE_VOID
	} else {
		bad = r.Expr == nil || r.Expr.Type() != fn.Type()
	}
	if bad {
		s.errorf(r.Lineno(), "", ErrInvalidReturn)
	}
}

// callFaults counts the mismatches between the formal parameters and the
// actual arguments: one per differing position, and one per leftover formal
// or argument which is not void. The void marker of an empty parameter list
// is therefore never a leftover fault.
func callFaults(params []*node.Param, args []node.Node) int {
	faults := 0
	i := 0
	for ; i < len(params) && i < len(args); i++ {
		if params[i].Type() != args[i].Type() {
			faults++
		}
	}
	for _, param := range params[i:] {
		if param.Type() != types.TYPE_VOID {
			faults++
		}
	}
	for _, arg := range args[i:] {
		if arg.Type() != types.TYPE_VOID {
			faults++
		}
	}
	return faults
}

func (s *Analyzer) checkCall(c *node.Call) {
	sym := s.res.Global.Symbols.LookupKind(c.Name, symtab.SYM_FUNCTION)
	if sym == nil {
		panic(fmt.Sprintf("function %q vanished after the first pass", c.Name))
	}
	c.SetType(sym.Type)
	if sym.Placeholder() {
		return
	}
	fd, ok := sym.Node.(*node.FunDecl)
	if !ok {
		panic(fmt.Sprintf("function symbol %q backed by %T", c.Name, sym.Node))
	}
	for i := callFaults(fd.Params, c.Args); i > 0; i-- {
		s.errorf(c.Lineno(), c.Name, ErrInvalidCall)
	}
}

func (s *Analyzer) checkVarAccess(v *node.VarAccess) {
	sym := s.scope.LookupKind(v.Name, symtab.SYM_VARIABLE)
	if sym == nil {
		panic(fmt.Sprintf("variable %q vanished after the first pass", v.Name))
	}
	if sym.Placeholder() {
		v.SetType(sym.Type)
		return
	}
	if v.Index == nil {
		v.SetType(sym.Type)
		return
	}
	if sym.Type != types.TYPE_INT_ARRAY {
		s.errorf(v.Lineno(), v.Name, ErrIndexNotArray)
	} else if v.Index.Type() != types.TYPE_INT {
		s.errorf(v.Lineno(), v.Name, ErrIndexNotInt)
	}
	v.SetType(types.TYPE_INT)
}
