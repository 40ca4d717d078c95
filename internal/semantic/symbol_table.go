// Package semantic implements the scoped symbol table and the single-pass
// analyzer that type-checks a Program and annotates every expression with
// the type it computes.
package semantic

import "github.com/RaphaeleL/ris-sub000/internal/types"

// Symbol is one binding in a Scope: a variable or a function signature.
type Symbol struct {
	Name string
	Type types.Type
}

// Scope is one level of the symbol-table stack. InsertLocal fails if the
// key is already present in this scope; shadowing in a nested scope is
// permitted.
type Scope struct {
	symbols map[string]*Symbol
	outer   *Scope
}

func newScope(outer *Scope) *Scope {
	return &Scope{symbols: make(map[string]*Symbol), outer: outer}
}

// InsertLocal adds name to this scope only. It reports false if name is
// already bound in this scope (not in an enclosing one).
func (s *Scope) InsertLocal(name string, typ types.Type) bool {
	if _, exists := s.symbols[name]; exists {
		return false
	}
	s.symbols[name] = &Symbol{Name: name, Type: typ}
	return true
}

// LookupLocal resolves name in this scope only, ignoring enclosing scopes.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Lookup resolves name in this scope or the nearest enclosing one that
// binds it.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// SymbolTable is the scope stack the analyzer pushes and pops as it
// descends into blocks and function bodies. It is never empty between
// analysis start and return.
type SymbolTable struct {
	top *Scope
}

// NewSymbolTable creates a table with a single, empty root scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{top: newScope(nil)}
}

// Enter pushes a new scope enclosed by the current top.
func (t *SymbolTable) Enter() {
	t.top = newScope(t.top)
}

// Exit pops the current scope. It is a caller error to call Exit without a
// matching prior Enter; the analyzer always balances the two.
func (t *SymbolTable) Exit() {
	if t.top.outer != nil {
		t.top = t.top.outer
	}
}

// InsertLocal delegates to the current scope.
func (t *SymbolTable) InsertLocal(name string, typ types.Type) bool {
	return t.top.InsertLocal(name, typ)
}

// LookupLocal delegates to the current scope.
func (t *SymbolTable) LookupLocal(name string) (*Symbol, bool) {
	return t.top.LookupLocal(name)
}

// Lookup delegates to the current scope's chain.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	return t.top.Lookup(name)
}

// Depth reports how many scopes are currently pushed, root included. Used
// by tests to assert Enter/Exit stay balanced.
func (t *SymbolTable) Depth() int {
	n := 0
	for s := t.top; s != nil; s = s.outer {
		n++
	}
	return n
}
