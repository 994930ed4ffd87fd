// Package semantic type-checks a parsed Minipar Module: operand types for
// every operator, return-type agreement between `return` and its enclosing
// function, break/continue/return nesting, and the extra contracts around
// par blocks and the two channel statements. It mirrors the reference
// implementation's context-stack visitor (minipar/semantic.py), generalized
// from Python's duck-typed dispatch to an explicit Go type switch.
package semantic

import (
	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/builtin"
	cerrors "github.com/minipar-lang/minipar/compiler/errors"
	"github.com/minipar-lang/minipar/compiler/token"
)

// Analyzer walks a Module's statement tree, accumulating semantic errors.
// Per spec.md, analysis stops at the first error.
type Analyzer struct {
	errors    cerrors.List
	context   []ast.Node
	funcTable map[string]*ast.FuncDef
}

func New() *Analyzer {
	return &Analyzer{funcTable: map[string]*ast.FuncDef{}}
}

// semAbort unwinds analysis after the first semantic error.
type semAbort struct{}

// Analyze type-checks mod and returns whatever errors were found (empty if
// none).
func (a *Analyzer) Analyze(mod *ast.Module) cerrors.List {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(semAbort); !ok {
				panic(r)
			}
		}
	}()
	for _, stmt := range mod.Stmts {
		a.visitStmt(stmt)
	}
	return a.errors
}

func (a *Analyzer) fail(format string, args ...interface{}) {
	a.errors = append(a.errors, cerrors.NewSemanticError(format, args...))
	panic(semAbort{})
}

func (a *Analyzer) push(n ast.Node) { a.context = append(a.context, n) }
func (a *Analyzer) pop()            { a.context = a.context[:len(a.context)-1] }

func (a *Analyzer) inContext(match func(ast.Node) bool) bool {
	for _, n := range a.context {
		if match(n) {
			return true
		}
	}
	return false
}

func (a *Analyzer) innermostFuncDef() *ast.FuncDef {
	for i := len(a.context) - 1; i >= 0; i-- {
		if fn, ok := a.context[i].(*ast.FuncDef); ok {
			return fn
		}
	}
	return nil
}

func isFuncDef(n ast.Node) bool { _, ok := n.(*ast.FuncDef); return ok }
func isWhile(n ast.Node) bool   { _, ok := n.(*ast.While); return ok }
func isLocalScope(n ast.Node) bool {
	switch n.(type) {
	case *ast.If, *ast.While, *ast.Par:
		return true
	default:
		return false
	}
}

// ---- statements ----

func (a *Analyzer) visitStmt(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.Assign:
		a.visitAssign(n)
	case *ast.ID:
		// A bare declaration statement (`x: number` with no `= ...` tail);
		// the parser already rejected redeclaration when inserting it into
		// the symbol table, so there is nothing further to check here.
	case *ast.Return:
		a.visitReturn(n)
	case *ast.Break:
		if !a.inContext(isWhile) {
			a.fail("break found outside of a loop")
		}
	case *ast.Continue:
		if !a.inContext(isWhile) {
			a.fail("continue found outside of a loop")
		}
	case *ast.FuncDef:
		a.visitFuncDef(n)
	case *ast.If:
		a.visitIf(n)
	case *ast.While:
		a.visitWhile(n)
	case *ast.Par:
		a.visitPar(n)
	case *ast.Seq:
		for _, s := range n.Body {
			a.visitStmt(s)
		}
	case *ast.CChannel:
		a.visitCChannel(n)
	case *ast.SChannel:
		a.visitSChannel(n)
	case *ast.Call:
		a.exprType(n)
	default:
		a.fail("unsupported statement")
	}
}

func (a *Analyzer) visitAssign(n *ast.Assign) {
	leftType := n.Left.ExprType()
	rightType := a.exprType(n.Right)
	if leftType != rightType {
		a.fail("variable %q expects %s, found %s", n.Left.Name(), leftType, rightType)
	}
}

func (a *Analyzer) visitReturn(n *ast.Return) {
	if !a.inContext(isFuncDef) {
		a.fail("return found outside of a function declaration")
	}
	fn := a.innermostFuncDef()
	exprType := ast.VOID
	if n.Expr != nil {
		exprType = a.exprType(n.Expr)
	}
	if exprType != fn.ReturnType {
		a.fail("return in %q has a different type than declared", fn.Name)
	}
}

func (a *Analyzer) visitFuncDef(n *ast.FuncDef) {
	if a.inContext(isLocalScope) {
		a.fail("functions cannot be declared inside local scopes")
	}
	if _, exists := a.funcTable[n.Name]; !exists {
		a.funcTable[n.Name] = n
	}
	a.push(n)
	for _, s := range n.Body {
		a.visitStmt(s)
	}
	a.pop()
}

func (a *Analyzer) visitIf(n *ast.If) {
	if condType := a.exprType(n.Cond); condType != ast.BOOL {
		a.fail("expected BOOL, found %s", condType)
	}
	a.push(n)
	for _, s := range n.Body {
		a.visitStmt(s)
	}
	for _, s := range n.Else {
		a.visitStmt(s)
	}
	a.pop()
}

func (a *Analyzer) visitWhile(n *ast.While) {
	if condType := a.exprType(n.Cond); condType != ast.BOOL {
		a.fail("expected BOOL, found %s", condType)
	}
	a.push(n)
	for _, s := range n.Body {
		a.visitStmt(s)
	}
	a.pop()
}

// visitPar enforces that a par block's statements are all calls, then
// type-checks each call's arguments — a stricter pass than the reference
// analyzer, which only runs the isinstance check and never visits the calls
// it found.
func (a *Analyzer) visitPar(n *ast.Par) {
	for _, s := range n.Body {
		call, ok := s.(*ast.Call)
		if !ok {
			a.fail("a parallel execution block expects only function calls")
		}
		a.exprType(call)
	}
}

func (a *Analyzer) visitCChannel(n *ast.CChannel) {
	if t := a.exprType(n.Host); t != ast.STRING {
		a.fail("host in %q must be STRING", n.Name)
	}
	if t := a.exprType(n.Port); t != ast.NUMBER {
		a.fail("port in %q must be NUMBER", n.Name)
	}
}

func (a *Analyzer) visitSChannel(n *ast.SChannel) {
	fn, ok := a.funcTable[n.FuncName]
	if !ok {
		a.fail("function %q not declared", n.FuncName)
	}
	if fn.ReturnType != ast.STRING {
		a.fail("the function backing %q must return STRING", n.Name)
	}
	if fn.Params.Len() != 1 || fn.Params.Types[fn.Params.Order[0]] != ast.STRING {
		a.fail("the function backing %q must take exactly one STRING parameter", n.Name)
	}
	if t := a.exprType(n.Description); t != ast.STRING {
		a.fail("description in %q must be STRING", n.Name)
	}
	if t := a.exprType(n.Host); t != ast.STRING {
		a.fail("host in %q must be STRING", n.Name)
	}
	if t := a.exprType(n.Port); t != ast.NUMBER {
		a.fail("port in %q must be NUMBER", n.Name)
	}
}

// ---- expressions ----

func (a *Analyzer) exprType(expr ast.Expression) ast.Type {
	switch n := expr.(type) {
	case *ast.Constant:
		return n.ExprType()
	case *ast.ID:
		return n.ExprType()
	case *ast.Access:
		if n.ExprType() != ast.STRING {
			a.fail("index access is only valid on STRING")
		}
		return n.ExprType()
	case *ast.Logical:
		left, right := a.exprType(n.Left), a.exprType(n.Right)
		if left != ast.BOOL || right != ast.BOOL {
			a.fail("expected BOOL, found %s and %s in %q", left, right, n.Token.Value)
		}
		return ast.BOOL
	case *ast.Relational:
		left, right := a.exprType(n.Left), a.exprType(n.Right)
		if n.Token.Value == "==" || n.Token.Value == "!=" {
			if left != right {
				a.fail("expected matching types, found %s and %s in %q", left, right, n.Token.Value)
			}
		} else if left != ast.NUMBER || right != ast.NUMBER {
			a.fail("expected NUMBER, found %s and %s in %q", left, right, n.Token.Value)
		}
		return ast.BOOL
	case *ast.Arithmetic:
		left, right := a.exprType(n.Left), a.exprType(n.Right)
		if n.Token.Value == "+" {
			if left != right {
				a.fail("expected matching types, found %s and %s in %q", left, right, n.Token.Value)
			}
		} else if left != ast.NUMBER || right != ast.NUMBER {
			a.fail("expected NUMBER, found %s and %s in %q", left, right, n.Token.Value)
		}
		return left
	case *ast.Unary:
		operand := a.exprType(n.Expr)
		switch n.Token.Tag {
		case token.MINUS:
			if operand != ast.NUMBER {
				a.fail("expected NUMBER, found %s in %q", operand, n.Token.Value)
			}
		case token.BANG:
			if operand != ast.BOOL {
				a.fail("expected BOOL, found %s in %q", operand, n.Token.Value)
			}
		}
		return operand
	case *ast.Call:
		return a.visitCall(n)
	default:
		a.fail("unsupported expression")
		return ast.VOID
	}
}

func (a *Analyzer) visitCall(n *ast.Call) ast.Type {
	name := n.CalleeName()
	for _, arg := range n.Args {
		a.exprType(arg)
	}

	fn, ok := a.funcTable[name]
	if !ok {
		if !builtin.IsBuiltin(name) {
			a.fail("function %q not declared", name)
		}
		return builtin.ReturnTypes[name]
	}

	nondefault := fn.Params.NondefaultCount()
	if nondefault > len(n.Args) {
		a.fail("expected at least %d arguments, found %d", nondefault, len(n.Args))
	}
	return fn.ReturnType
}
