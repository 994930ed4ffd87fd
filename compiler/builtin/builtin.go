// Package builtin is the shared table of built-in function names and their
// declared return types, consulted by the parser (to pre-seed the symbol
// table), the semantic analyzer (to type-check calls), and the evaluator (to
// dispatch calls that never hit the function table).
package builtin

import "github.com/minipar-lang/minipar/compiler/ast"

// ReturnTypes is DEFAULT_FUNCTION_NAMES from the reference implementation:
// every built-in's declared return type.
var ReturnTypes = map[string]ast.Type{
	"print":      ast.VOID,
	"input":      ast.STRING,
	"sleep":      ast.VOID,
	"to_number":  ast.NUMBER,
	"to_string":  ast.STRING,
	"to_bool":    ast.BOOL,
	"send":       ast.STRING,
	"close":      ast.VOID,
	"len":        ast.NUMBER,
	"isalpha":    ast.BOOL,
	"isnum":      ast.BOOL,
}

// Names lists every built-in, in the fixed order used for deterministic
// symbol-table seeding.
var Names = []string{
	"print", "input", "sleep", "to_number", "to_string", "to_bool",
	"send", "close", "len", "isalpha", "isnum",
}

// IsBuiltin reports whether name is a built-in function.
func IsBuiltin(name string) bool {
	_, ok := ReturnTypes[name]
	return ok
}
