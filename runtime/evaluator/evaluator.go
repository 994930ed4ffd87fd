// Package evaluator is Minipar's tree-walking interpreter: it dispatches on
// AST node kind, threading a current runtime scope (vartable.Table), a
// process-wide function table, and a process-wide connection table, per
// spec.md §4.4. Control flow (break/continue/return) propagates as a
// sentinel result value rather than as exceptions or panics, per the
// reference implementation's `commands` enum and the Design Notes'
// recommendation to keep that shape in a systems rewrite.
package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/runtime/connection"
	"github.com/minipar-lang/minipar/runtime/vartable"
	"github.com/minipar-lang/minipar/runtime/value"
)

// Signal distinguishes a plain expression result from a control-flow
// sentinel propagating out of a block.
type Signal int

const (
	SigNone Signal = iota
	SigBreak
	SigContinue
	SigReturn
)

// Result is what executing a statement or block produces: either an
// ordinary (possibly None) value, or a control-flow signal carrying the
// value it's propagating (meaningful only for SigReturn).
type Result struct {
	Signal Signal
	Value  value.Value
}

func none() Result { return Result{Signal: SigNone, Value: value.None()} }

// RuntimeError is a fatal error raised during evaluation (undeclared
// variable, bad index, I/O failure on a channel, division by zero, bad
// to_number coercion — spec.md §7).
type RuntimeError struct{ Message string }

func (e *RuntimeError) Error() string { return e.Message }

func fail(format string, args ...interface{}) {
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...)})
}

// Evaluator holds everything one interpreter thread needs to run a Module
// or a single statement: the current lexical scope, the function table, the
// connection table, and the I/O streams print/input read and write.
type Evaluator struct {
	vars  *vartable.Table
	funcs map[string]*ast.FuncDef
	conns *connection.Table

	stdout io.Writer
	stdin  *bufio.Reader
	log    *zap.SugaredLogger

	// channelTimeout bounds c_channel's dial and s_channel's accept (see
	// internal/config.Config.ChannelTimeout). It is an operator knob, not
	// language behavior: spec.md §5 keeps channel operations themselves
	// untimed, so zero means "no deadline" rather than "fail instantly".
	channelTimeout time.Duration
}

// New creates a top-level Evaluator with empty variable, function, and
// connection tables, writing to stdout/reading from stdin. channelTimeout of
// zero disables the dial/accept deadline entirely.
func New(log *zap.SugaredLogger, channelTimeout time.Duration) *Evaluator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Evaluator{
		vars:           vartable.New(),
		funcs:          map[string]*ast.FuncDef{},
		conns:          connection.New(),
		stdout:         os.Stdout,
		stdin:          bufio.NewReader(os.Stdin),
		log:            log,
		channelTimeout: channelTimeout,
	}
}

// SetIO overrides the default stdio streams — used by tests to capture
// print() output and script input().
func (e *Evaluator) SetIO(stdout io.Writer, stdin io.Reader) {
	e.stdout = stdout
	e.stdin = bufio.NewReader(stdin)
}

// Connections exposes the evaluator's connection table read-only, for the
// diagnostics server's /connections endpoint.
func (e *Evaluator) Connections() *connection.Table { return e.conns }

// Functions exposes the evaluator's declared function table read-only, for
// the diagnostics server's /functions endpoint.
func (e *Evaluator) Functions() map[string]*ast.FuncDef { return e.funcs }

// Run executes every statement in mod in order, recovering a *RuntimeError
// panic into a returned error so callers don't need their own recover.
func (e *Evaluator) Run(mod *ast.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(*RuntimeError); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()
	e.execBlock(mod.Stmts)
	return nil
}

func (e *Evaluator) enterScope() {
	e.vars = e.vars.Nested()
}

func (e *Evaluator) exitScope() {
	if e.vars.Prev != nil {
		e.vars = e.vars.Prev
	}
}
