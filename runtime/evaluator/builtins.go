package evaluator

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/builtin"
	"github.com/minipar-lang/minipar/runtime/value"
)

// evalCall implements the Call resolution order from spec.md §4.4: builtins
// other than send/close first, then send/close (which read the channel
// name out of the call's receiver token), then the user function table.
func (e *Evaluator) evalCall(n *ast.Call) value.Value {
	name := n.CalleeName()

	switch name {
	case "send":
		return e.callSend(n)
	case "close":
		return e.callClose(n)
	}

	if builtin.IsBuiltin(name) {
		args := make([]value.Value, len(n.Args))
		for i, a := range n.Args {
			args[i] = e.evalExpr(a)
		}
		return e.callBuiltin(name, args)
	}

	fn, ok := e.funcs[name]
	if !ok {
		fail("function %q not defined", name)
	}
	return e.callUserFunc(fn, n.Args)
}

// callUserFunc creates a fresh scope, pre-binds every parameter to its
// default (if any), then overwrites in order with the evaluated call
// arguments — in that order, matching spec.md §4.4: argument expressions
// are evaluated already inside the callee's new scope, so they still
// resolve caller-scope names via the scope chain, but a parameter name
// that collides with a caller-scope name is shadowed by its own default
// first.
func (e *Evaluator) callUserFunc(fn *ast.FuncDef, argExprs []ast.Expression) value.Value {
	e.enterScope()
	defer e.exitScope()

	for _, pname := range fn.Params.Order {
		if def, ok := fn.Params.Default[pname]; ok {
			e.vars.Declare(pname, e.evalExpr(def))
		}
	}
	for i, pname := range fn.Params.Order {
		if i >= len(argExprs) {
			break
		}
		e.vars.Declare(pname, e.evalExpr(argExprs[i]))
	}

	r := e.execBlock(fn.Body)
	if r.Signal == SigReturn {
		return r.Value
	}
	return value.None()
}

// callUserFuncWithValues is callUserFunc's counterpart for callers that
// already hold runtime values rather than AST argument expressions — used
// by the s_channel request loop, whose single argument comes off the wire
// as decoded text, not source.
func (e *Evaluator) callUserFuncWithValues(fn *ast.FuncDef, args []value.Value) value.Value {
	e.enterScope()
	defer e.exitScope()

	for _, pname := range fn.Params.Order {
		if def, ok := fn.Params.Default[pname]; ok {
			e.vars.Declare(pname, e.evalExpr(def))
		}
	}
	for i, pname := range fn.Params.Order {
		if i >= len(args) {
			break
		}
		e.vars.Declare(pname, args[i])
	}

	r := e.execBlock(fn.Body)
	if r.Signal == SigReturn {
		return r.Value
	}
	return value.None()
}

func (e *Evaluator) callBuiltin(name string, args []value.Value) value.Value {
	switch name {
	case "print":
		return e.builtinPrint(args)
	case "input":
		return e.builtinInput(args)
	case "sleep":
		return e.builtinSleep(args)
	case "to_number":
		return e.builtinToNumber(args)
	case "to_string":
		return e.builtinToString(args)
	case "to_bool":
		return e.builtinToBool(args)
	case "len":
		return e.builtinLen(args)
	case "isalpha":
		return e.builtinIsAlpha(args)
	case "isnum":
		return e.builtinIsNum(args)
	default:
		fail("unimplemented built-in %q", name)
		return value.None()
	}
}

func (e *Evaluator) builtinPrint(args []value.Value) value.Value {
	var parts []string
	for _, a := range args {
		parts = append(parts, a.String())
	}
	fmt.Fprintln(e.stdout, strings.Join(parts, " "))
	return value.None()
}

func (e *Evaluator) builtinInput(args []value.Value) value.Value {
	if len(args) > 0 {
		fmt.Fprint(e.stdout, args[0].String())
	}
	reader := e.stdin
	if reader == nil {
		reader = bufio.NewReader(strings.NewReader(""))
	}
	line, _ := reader.ReadString('\n')
	return value.Str(strings.TrimRight(line, "\r\n"))
}

func (e *Evaluator) builtinSleep(args []value.Value) value.Value {
	if len(args) == 0 {
		return value.None()
	}
	seconds := args[0].AsFloat64()
	time.Sleep(time.Duration(seconds * float64(time.Second)))
	return value.None()
}

// builtinToNumber mirrors the reference's coercion: try an integer parse
// first, fall back to float, fail the call as a runtime error otherwise.
func (e *Evaluator) builtinToNumber(args []value.Value) value.Value {
	if len(args) == 0 {
		fail("to_number expects an argument")
	}
	s := args[0].String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(i)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fail("to_number: cannot coerce %q", s)
	}
	return value.Float(f)
}

func (e *Evaluator) builtinToString(args []value.Value) value.Value {
	if len(args) == 0 {
		return value.Str("")
	}
	return value.Str(args[0].String())
}

func (e *Evaluator) builtinToBool(args []value.Value) value.Value {
	if len(args) == 0 {
		return value.Bool(false)
	}
	return value.Bool(args[0].Truthy())
}

func (e *Evaluator) builtinLen(args []value.Value) value.Value {
	if len(args) == 0 || args[0].Kind != value.KindString {
		fail("len expects a STRING argument")
	}
	return value.Int(int64(len(args[0].S)))
}

func (e *Evaluator) builtinIsAlpha(args []value.Value) value.Value {
	if len(args) == 0 || args[0].Kind != value.KindString {
		fail("isalpha expects a STRING argument")
	}
	s := args[0].S
	if s == "" {
		return value.Bool(false)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return value.Bool(false)
		}
	}
	return value.Bool(true)
}

func (e *Evaluator) builtinIsNum(args []value.Value) value.Value {
	if len(args) == 0 || args[0].Kind != value.KindString {
		fail("isnum expects a STRING argument")
	}
	s := args[0].S
	if s == "" {
		return value.Bool(false)
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return value.Bool(false)
		}
	}
	return value.Bool(true)
}
