package evaluator

import (
	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/runtime/value"
)

// execBlock runs body statement by statement, stopping as soon as one
// produces a non-SigNone Result and propagating that Result to the caller
// (the loop/function/if that owns this block). Plain statement results
// (including a bare call's return value) never cause early exit — only
// break/continue/return do, per spec.md §4.4 and Design Notes' sentinel
// recommendation.
func (e *Evaluator) execBlock(body ast.Body) Result {
	for _, stmt := range body {
		r := e.execStmt(stmt)
		if r.Signal != SigNone {
			return r
		}
	}
	return none()
}

func (e *Evaluator) execStmt(stmt ast.Statement) Result {
	switch n := stmt.(type) {
	case *ast.Assign:
		e.execAssign(n)
		return none()
	case *ast.ID:
		// Bare declaration with no initializer (`x: number` on its own):
		// bind the name in the current scope to none so a later
		// `x = ...` mutates it rather than silently re-declaring it.
		e.vars.Declare(n.Name(), value.None())
		return none()
	case *ast.Return:
		return Result{Signal: SigReturn, Value: e.evalExpr(n.Expr)}
	case *ast.Break:
		return Result{Signal: SigBreak}
	case *ast.Continue:
		return Result{Signal: SigContinue}
	case *ast.FuncDef:
		e.execFuncDef(n)
		return none()
	case *ast.If:
		return e.execIf(n)
	case *ast.While:
		return e.execWhile(n)
	case *ast.Par:
		e.execPar(n)
		return none()
	case *ast.Seq:
		// No-op, matching spec.md §4.4 and the reference executor's
		// exec_Seq exactly: Seq's body is never run. A seq block only
		// documents sequential intent; it has no runtime effect of its own.
		return none()
	case *ast.CChannel:
		e.execCChannel(n)
		return none()
	case *ast.SChannel:
		e.execSChannel(n)
		return none()
	case *ast.Call:
		e.evalCall(n)
		return none()
	default:
		fail("unsupported statement")
		return none()
	}
}

func (e *Evaluator) execAssign(n *ast.Assign) {
	v := e.evalExpr(n.Right)
	if n.Left.Decl {
		e.vars.Declare(n.Left.Name(), v)
	} else {
		e.vars.Set(n.Left.Name(), v)
	}
}

// execFuncDef registers a function definition the first time it is
// evaluated; redefinitions are silently ignored, matching the reference
// executor.
func (e *Evaluator) execFuncDef(n *ast.FuncDef) {
	if _, exists := e.funcs[n.Name]; !exists {
		e.funcs[n.Name] = n
	}
}

func (e *Evaluator) execIf(n *ast.If) Result {
	cond := e.evalExpr(n.Cond)
	e.enterScope()
	defer e.exitScope()
	if cond.Truthy() {
		return e.execBlock(n.Body)
	}
	if n.Else != nil {
		return e.execBlock(n.Else)
	}
	return none()
}

// execWhile evaluates the loop condition at the top of every iteration,
// inside that iteration's own scope — the corrected behavior per REDESIGN
// FLAG (b): the reference interpreter instead re-evaluates the condition
// only at the bottom of the loop body, with the outer scope's initial
// evaluation serving as the entry guard.
func (e *Evaluator) execWhile(n *ast.While) Result {
	for {
		e.enterScope()
		cond := e.evalExpr(n.Cond)
		if !cond.Truthy() {
			e.exitScope()
			return none()
		}

		r := e.execBlock(n.Body)
		e.exitScope()

		switch r.Signal {
		case SigBreak:
			return none()
		case SigReturn:
			return r
		default: // SigNone, SigContinue both just loop again
		}
	}
}
