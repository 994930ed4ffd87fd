// Package vartable implements the runtime counterpart of compiler/symtab: a
// nested, lexically-scoped map from variable name to value, with an
// outer-scope back-pointer (spec.md §3).
package vartable

import "github.com/minipar-lang/minipar/runtime/value"

// Table is a single runtime scope, chained to its enclosing scope via Prev.
type Table struct {
	entries map[string]value.Value
	Prev    *Table
}

// New creates a root (outermost) runtime scope.
func New() *Table {
	return &Table{entries: map[string]value.Value{}}
}

// Nested opens a new scope whose outer scope is t — used on entering a
// block (if/while/func-call).
func (t *Table) Nested() *Table {
	return &Table{entries: map[string]value.Value{}, Prev: t}
}

// Find walks outward from t looking for name, returning the scope that
// owns it (not the value itself) so callers can mutate in place, matching
// the reference VarTable.find behavior.
func (t *Table) Find(name string) (*Table, bool) {
	for s := t; s != nil; s = s.Prev {
		if _, ok := s.entries[name]; ok {
			return s, true
		}
	}
	return nil, false
}

// Get returns name's value and whether it was found anywhere in the chain.
func (t *Table) Get(name string) (value.Value, bool) {
	owner, ok := t.Find(name)
	if !ok {
		return value.None(), false
	}
	return owner.entries[name], true
}

// Declare binds name in this exact scope, shadowing any outer declaration.
func (t *Table) Declare(name string, v value.Value) {
	t.entries[name] = v
}

// Set mutates name in the nearest enclosing scope that already defines it,
// or declares it in the current scope if it is not found anywhere — the
// Assign evaluation rule from spec.md §4.4.
func (t *Table) Set(name string, v value.Value) {
	if owner, ok := t.Find(name); ok {
		owner.entries[name] = v
		return
	}
	t.entries[name] = v
}

// Clone deep-copies the full scope chain, used when a par block snapshots
// the variable table for each spawned child (spec.md §4.4/§5): children
// must share nothing mutable with the parent or each other.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	clone := &Table{entries: make(map[string]value.Value, len(t.entries)), Prev: t.Prev.Clone()}
	for k, v := range t.entries {
		clone.entries[k] = v
	}
	return clone
}
