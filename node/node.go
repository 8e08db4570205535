// Package node defines the C-minus syntax tree produced by the parser and
// annotated by the analyzer.
package node

import (
	"fmt"
	"strings"

	"github.com/susji/cminus/types"
)

type NodeKind int

const (
	NODE_VARDECL = iota
	NODE_FUNDECL
	NODE_PARAM
	NODE_COMPOUND
	NODE_IF
	NODE_WHILE
	NODE_RETURN
	NODE_ASSIGN
	NODE_BINOP
	NODE_CALL
	NODE_VARACCESS
	NODE_CONST
)

var kindnames = [...]string{
	"VariableDecl",
	"FunctionDecl",
	"Params",
	"CompoundStmt",
	"IfStmt",
	"WhileStmt",
	"ReturnStmt",
	"AssignExpr",
	"BinOpExpr",
	"CallExpr",
	"VarAccessExpr",
	"ConstExpr",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindnames[k]
}

// Common carries what every node has: the line it came from and its type.
// For declarations the type is the declared one and is set by the parser;
// for expressions it is inferred by the analyzer.
type Common struct {
	Line int
	Typ  types.Type
}

// At is a shorthand for building Common.
func At(lineno int, t types.Type) Common {
	return Common{Line: lineno, Typ: t}
}

func (c *Common) Lineno() int {
	return c.Line
}

func (c *Common) Type() types.Type {
	return c.Typ
}

func (c *Common) SetType(t types.Type) {
	c.Typ = t
}

// Node is the interface, which must be implemented by all syntax tree nodes.
type Node interface {
	String() string
	Kind() NodeKind
	Lineno() int
	Type() types.Type
	SetType(types.Type)
}

type VarDecl struct {
	Common
	Name string
	Size int // element count for arrays, zero otherwise
}

type FunDecl struct {
	Common
	Name   string
	Params []*Param
	Body   *Compound
}

// Param is a single formal parameter. A parameter list written as "(void)"
// or "()" is represented by one Param with NoParams set.
type Param struct {
	Common
	Name     string
	NoParams bool
}

type Compound struct {
	Common
	Decls []*VarDecl
	Stmts []Node
	// FuncBody marks the block that is a function's body. It shares its
	// scope with the function's parameters.
	FuncBody bool
}

type If struct {
	Common
	Cond, Then, Else Node
}

type While struct {
	Common
	Cond, Body Node
}

type Return struct {
	Common
	Expr Node
}

type Assign struct {
	Common
	To   *VarAccess
	What Node
}

type BinOp struct {
	Common
	Op          KindOpBin
	Left, Right Node
}

type Call struct {
	Common
	Name string
	Args []Node
}

type VarAccess struct {
	Common
	Name  string
	Index Node
}

type Const struct {
	Common
	Value int
}

type KindOpBin int

const (
	OPBIN_ADD = iota
	OPBIN_SUB
	OPBIN_MUL
	OPBIN_DIV
	OPBIN_LT
	OPBIN_LE
	OPBIN_GT
	OPBIN_GE
	OPBIN_EQ
	OPBIN_NE
)

var opbinnames = [...]string{
	"+",
	"-",
	"*",
	"/",
	"<",
	"<=",
	">",
	">=",
	"==",
	"!=",
}

func (op KindOpBin) String() string {
	return opbinnames[op]
}

func (n *VarDecl) Kind() NodeKind   { return NODE_VARDECL }
func (n *FunDecl) Kind() NodeKind   { return NODE_FUNDECL }
func (n *Param) Kind() NodeKind     { return NODE_PARAM }
func (n *Compound) Kind() NodeKind  { return NODE_COMPOUND }
func (n *If) Kind() NodeKind        { return NODE_IF }
func (n *While) Kind() NodeKind     { return NODE_WHILE }
func (n *Return) Kind() NodeKind    { return NODE_RETURN }
func (n *Assign) Kind() NodeKind    { return NODE_ASSIGN }
func (n *BinOp) Kind() NodeKind     { return NODE_BINOP }
func (n *Call) Kind() NodeKind      { return NODE_CALL }
func (n *VarAccess) Kind() NodeKind { return NODE_VARACCESS }
func (n *Const) Kind() NodeKind     { return NODE_CONST }

func (n *VarDecl) String() string {
	if n.Typ.IsArray() {
		return fmt.Sprintf("(vardecl %q %s %d)", n.Name, n.Typ, n.Size)
	}
	return fmt.Sprintf("(vardecl %q %s)", n.Name, n.Typ)
}

func (n *FunDecl) String() string {
	b := &strings.Builder{}
	b.WriteString(fmt.Sprintf("(fundecl %q %s (", n.Name, n.Typ))
	for i, param := range n.Params {
		b.WriteString(param.String())
		if (i + 1) != len(n.Params) {
			b.WriteString(" ")
		}
	}
	b.WriteString(") ")
	if n.Body != nil {
		b.WriteString(n.Body.String())
	}
	b.WriteString(")")
	return b.String()
}

func (n *Param) String() string {
	if n.NoParams {
		return "(param void)"
	}
	return fmt.Sprintf("(param %q %s)", n.Name, n.Typ)
}

func (n *Compound) String() string {
	b := &strings.Builder{}
	b.WriteString("(begin")
	for _, decl := range n.Decls {
		b.WriteString(fmt.Sprintf(" %s", decl))
	}
	for _, stmt := range n.Stmts {
		b.WriteString(fmt.Sprintf(" %s", stmt))
	}
	b.WriteString(")")
	return b.String()
}

func (n *If) String() string {
	b := &strings.Builder{}
	b.WriteString(fmt.Sprintf("(if %s", n.Cond))
	b.WriteString(fmt.Sprintf(" %s", n.Then))
	if n.Else != nil {
		b.WriteString(fmt.Sprintf(" %s", n.Else))
	} else {
		b.WriteString(" 'noelse")
	}
	b.WriteString(")")
	return b.String()
}

func (n *While) String() string {
	return fmt.Sprintf("(while %s %s)", n.Cond, n.Body)
}

func (n *Return) String() string {
	if n.Expr == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", n.Expr)
}

func (n *Assign) String() string {
	return fmt.Sprintf("(assign %s %s)", n.To, n.What)
}

func (n *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.Left, n.Right)
}

func (n *Call) String() string {
	b := &strings.Builder{}
	b.WriteString(fmt.Sprintf("(call %s", n.Name))
	for _, arg := range n.Args {
		b.WriteString(fmt.Sprintf(" %s", arg))
	}
	b.WriteString(")")
	return b.String()
}

func (n *VarAccess) String() string {
	if n.Index != nil {
		return fmt.Sprintf("([] %s %s)", n.Name, n.Index)
	}
	return n.Name
}

func (n *Const) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// Label describes n alone, without its children.
func Label(n Node) string {
	switch t := n.(type) {
	case *VarDecl:
		if t.Typ.IsArray() {
			return fmt.Sprintf("%s %q %s[%d]", t.Kind(), t.Name, t.Typ.Elem(), t.Size)
		}
		return fmt.Sprintf("%s %q %s", t.Kind(), t.Name, t.Typ)
	case *FunDecl:
		return fmt.Sprintf("%s %q returns %s", t.Kind(), t.Name, t.Typ)
	case *Param:
		if t.NoParams {
			return fmt.Sprintf("%s (void)", t.Kind())
		}
		return fmt.Sprintf("%s %q %s", t.Kind(), t.Name, t.Typ)
	case *Compound:
		if t.FuncBody {
			return fmt.Sprintf("%s (body)", t.Kind())
		}
		return t.Kind().String()
	case *BinOp:
		return fmt.Sprintf("%s %s", t.Kind(), t.Op)
	case *Call:
		return fmt.Sprintf("%s %q", t.Kind(), t.Name)
	case *VarAccess:
		return fmt.Sprintf("%s %q", t.Kind(), t.Name)
	case *Const:
		return fmt.Sprintf("%s %d", t.Kind(), t.Value)
	default:
		return n.Kind().String()
	}
}

// Children returns the direct children of n in traversal order. Sequences
// (parameters, declarations, statements, arguments) are flattened in place.
func Children(n Node) []Node {
	sub := []Node{}
	a := func(n Node) {
		if n != nil {
			sub = append(sub, n)
		}
	}
	switch t := n.(type) {
	case *FunDecl:
		for _, param := range t.Params {
			a(param)
		}
		if t.Body != nil {
			a(t.Body)
		}
	case *Compound:
		for _, decl := range t.Decls {
			a(decl)
		}
		for _, stmt := range t.Stmts {
			a(stmt)
		}
	case *If:
		a(t.Cond)
		a(t.Then)
		a(t.Else)
	case *While:
		a(t.Cond)
		a(t.Body)
	case *Return:
		a(t.Expr)
	case *Assign:
		if t.To != nil {
			a(t.To)
		}
		a(t.What)
	case *BinOp:
		a(t.Left)
		a(t.Right)
	case *Call:
		for _, arg := range t.Args {
			a(arg)
		}
	case *VarAccess:
		a(t.Index)
	case *VarDecl, *Param, *Const:
	default:
		panic(fmt.Sprintf("children: unhandled %T", t))
	}
	return sub
}

// NodeCallback is called by Walk for each individual Node encountered. The
// integer argument is the current recursion depth. NodeCallback has to return
// a boolean, which indicates whether to continue recursion for the present
// path.
type NodeCallback func(Node, int) bool

func walk(node Node, cb NodeCallback, depth int) {
	if !cb(node, depth) {
		return
	}
	for _, n := range Children(node) {
		walk(n, cb, depth+1)
	}
}

// Walk performs a pre-order traversal of a syntax tree defined by node.
func Walk(node Node, cb NodeCallback) {
	walk(node, cb, 0)
}

// Visitor is called by Traverse before or after a node's children.
type Visitor func(Node)

// Traverse calls pre for n, traverses each child of n in order, and then
// calls post for n. A child's whole subtree is finished before its next
// sibling is entered.
func Traverse(n Node, pre, post Visitor) {
	if n == nil {
		return
	}
	pre(n)
	for _, child := range Children(n) {
		Traverse(child, pre, post)
	}
	post(n)
}

// TraverseAll runs Traverse over a sequence of top-level siblings.
func TraverseAll(ns []Node, pre, post Visitor) {
	for _, n := range ns {
		Traverse(n, pre, post)
	}
}

// Nop is a Visitor that does nothing.
func Nop(Node) {}
