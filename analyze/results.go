package analyze

import (
	"fmt"

	"github.com/susji/cminus/node"
	"github.com/susji/cminus/symtab"
)

// Results is what the analysis stage hands onwards:
//
//   1) The scope tree rooted at the global scope
//   2) Which scope each scope-opening node owns
//   3) Whether any diagnostic was reported
//
// Node types are written into the nodes themselves.
type Results struct {
	Global *symtab.Scope
	Scopes map[node.Node]*symtab.Scope
	Failed bool
}

// ScopeOf returns the scope owned by n, or nil. Only function declarations
// and blocks which are not function bodies own a scope.
func (r *Results) ScopeOf(n node.Node) *symtab.Scope {
	return r.Scopes[n]
}

func (r *Results) setScope(n node.Node, s *symtab.Scope) {
	if _, ok := r.Scopes[n]; ok {
		panic(fmt.Sprintf("scope assigned twice for %s", node.Label(n)))
	}
	r.Scopes[n] = s
}
