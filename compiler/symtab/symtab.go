// Package symtab implements the compile-time nested lexical scope used by
// the parser to reject redeclarations and resolve names ahead of semantic
// analysis.
package symtab

import "github.com/minipar-lang/minipar/compiler/ast"

// Symbol records a declared name's static type.
type Symbol struct {
	Name string
	Type ast.Type
}

// Table is a single lexical scope, chained to its enclosing scope via Prev.
type Table struct {
	entries map[string]Symbol
	Prev    *Table
}

// New creates a root (outermost) scope.
func New() *Table {
	return &Table{entries: map[string]Symbol{}}
}

// Nested opens a new scope whose outer scope is t.
func (t *Table) Nested() *Table {
	return &Table{entries: map[string]Symbol{}, Prev: t}
}

// Insert adds sym under name in the current scope only. It fails (returns
// false) if name is already declared in this exact scope — shadowing an
// outer scope's declaration is allowed, redeclaring within the same scope is
// not.
func (t *Table) Insert(name string, sym Symbol) bool {
	if _, exists := t.entries[name]; exists {
		return false
	}
	t.entries[name] = sym
	return true
}

// Find walks outward from t looking for name, returning the nearest
// declaration and whether one was found.
func (t *Table) Find(name string) (Symbol, bool) {
	for s := t; s != nil; s = s.Prev {
		if sym, ok := s.entries[name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}
