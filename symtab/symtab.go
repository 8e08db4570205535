// Package symtab holds the scope tree built by the analyzer and the symbol
// tables owned by each scope.
package symtab

import (
	"fmt"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/types"
)

const GlobalName = "global"

type SymbolKind int

const (
	SYM_VARIABLE = iota
	SYM_FUNCTION
)

var symkindnames = [...]string{
	"Variable",
	"Function",
}

func (k SymbolKind) String() string {
	return symkindnames[k]
}

type State int

const (
	STATE_DECLARED = iota
	STATE_UNDECLARED
	STATE_REDEFINED
)

var statenames = [...]string{
	"declared",
	"undeclared",
	"redefined",
}

func (s State) String() string {
	return statenames[s]
}

// Symbol is the bound metadata of one name within one scope.
type Symbol struct {
	Name   string
	Type   types.Type
	Kind   SymbolKind
	Lineno int
	// Node is the declaration backing this symbol. It is nil for
	// placeholders synthesized for undeclared names.
	Node  node.Node
	State State
	// Lines holds the declaration line followed by every referencing line
	// in traversal order.
	Lines []int
	// Redeclared holds the lines of later declarations of the same name in
	// the same scope. They never replace this record.
	Redeclared []int
	// Scope is the scope owned by a function symbol.
	Scope *Scope
}

// Reference appends a use site.
func (s *Symbol) Reference(lineno int) {
	s.Lines = append(s.Lines, lineno)
}

// Placeholder reports whether s stands in for a name that never resolved.
func (s *Symbol) Placeholder() bool {
	return s.Node == nil
}

// PriorLines returns every line this name was declared at in its scope.
func (s *Symbol) PriorLines() []int {
	ret := []int{s.Lineno}
	return append(ret, s.Redeclared...)
}

// MarkRedefined transitions a declared symbol, and the scope it owns, to
// the redefined state. Placeholders stay placeholders.
func (s *Symbol) MarkRedefined(lineno int) {
	s.Redeclared = append(s.Redeclared, lineno)
	if s.State == STATE_UNDECLARED {
		return
	}
	s.State = STATE_REDEFINED
	if s.Scope != nil {
		s.Scope.State = STATE_REDEFINED
	}
}

func (s *Symbol) String() string {
	return fmt.Sprintf("(symbol %q %s %s %s %v)", s.Name, s.Kind, s.Type, s.State, s.Lines)
}

// Table is an insertion-ordered symbol table. One name maps to at most one
// declared record; undeclared placeholders may share the name with it.
type Table struct {
	byName map[string][]*Symbol
	order  []*Symbol
}

func NewTable() *Table {
	return &Table{byName: map[string][]*Symbol{}}
}

func (t *Table) Insert(sym *Symbol) {
	t.byName[sym.Name] = append(t.byName[sym.Name], sym)
	t.order = append(t.order, sym)
}

// Lookup returns the declared record for name. If there is none, the
// first placeholder is returned.
func (t *Table) Lookup(name string) *Symbol {
	syms := t.byName[name]
	for _, sym := range syms {
		if !sym.Placeholder() {
			return sym
		}
	}
	if len(syms) > 0 {
		return syms[0]
	}
	return nil
}

func (t *Table) LookupKind(name string, kind SymbolKind) *Symbol {
	for _, sym := range t.byName[name] {
		if sym.Kind == kind {
			return sym
		}
	}
	return nil
}

// Symbols returns the records in insertion order.
func (t *Table) Symbols() []*Symbol {
	return t.order
}

func (t *Table) Len() int {
	return len(t.order)
}

// Scope is a lexical region with its own symbol table.
type Scope struct {
	Name   string
	Parent *Scope
	// Func is the function enclosing this scope, nil only for the global
	// scope.
	Func     *node.FunDecl
	Depth    int
	State    State
	Symbols  *Table
	Children []*Scope
}

func NewGlobal() *Scope {
	return &Scope{
		Name:    GlobalName,
		Symbols: NewTable(),
	}
}

// NewChild creates a scope nested in s.
func (s *Scope) NewChild(name string, fn *node.FunDecl) *Scope {
	child := &Scope{
		Name:    name,
		Parent:  s,
		Func:    fn,
		Depth:   s.Depth + 1,
		Symbols: NewTable(),
	}
	s.Children = append(s.Children, child)
	return child
}

func (s *Scope) IsGlobal() bool {
	return s.Parent == nil
}

func (s *Scope) Global() *Scope {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// Insert adds a new record to this scope. A nil n makes the record a
// placeholder.
func (s *Scope) Insert(name string, t types.Type, kind SymbolKind, lineno int, n node.Node) *Symbol {
	sym := &Symbol{
		Name:   name,
		Type:   t,
		Kind:   kind,
		Lineno: lineno,
		Node:   n,
		Lines:  []int{lineno},
	}
	if n == nil {
		sym.State = STATE_UNDECLARED
	}
	s.Symbols.Insert(sym)
	return sym
}

// LookupLocal searches only this scope.
func (s *Scope) LookupLocal(name string) *Symbol {
	return s.Symbols.Lookup(name)
}

// LookupKind searches for a symbol of the given kind starting from this
// scope and traversing outwards.
func (s *Scope) LookupKind(name string, kind SymbolKind) *Symbol {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym := cur.Symbols.LookupKind(name, kind); sym != nil {
			return sym
		}
	}
	return nil
}

// Walk visits s and all of its descendants in pre-order.
func (s *Scope) Walk(cb func(*Scope)) {
	cb(s)
	for _, child := range s.Children {
		child.Walk(cb)
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("(scope %q %d %s)", s.Name, s.Depth, s.State)
}
