package evaluator

import (
	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/token"
	"github.com/minipar-lang/minipar/runtime/value"
)

func (e *Evaluator) evalExpr(expr ast.Expression) value.Value {
	switch n := expr.(type) {
	case *ast.Constant:
		return e.evalConstant(n)
	case *ast.ID:
		return e.evalID(n)
	case *ast.Access:
		return e.evalAccess(n)
	case *ast.Logical:
		return e.evalLogical(n)
	case *ast.Relational:
		return e.evalRelational(n)
	case *ast.Arithmetic:
		return e.evalArithmetic(n)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Call:
		return e.evalCall(n)
	default:
		fail("unsupported expression")
		return value.None()
	}
}

// evalConstant dispatches BOOL literals on the token's TRUE/FALSE tag
// rather than the lexeme text, per REDESIGN FLAG (a): the reference
// interpreter instead coerces the lexeme string itself to a boolean, under
// which the literal `false` (a non-empty string) evaluates truthy.
func (e *Evaluator) evalConstant(n *ast.Constant) value.Value {
	switch n.ExprType() {
	case ast.STRING:
		return value.Str(n.Tok().Value)
	case ast.NUMBER:
		v, err := value.ParseNumber(n.Tok().Value)
		if err != nil {
			fail("%s", err)
		}
		return v
	case ast.BOOL:
		return value.Bool(n.Tok().Tag == token.TRUE)
	default:
		return value.Str(n.Tok().Value)
	}
}

func (e *Evaluator) evalID(n *ast.ID) value.Value {
	v, ok := e.vars.Get(n.Name())
	if !ok {
		fail("variable %q not defined", n.Name())
	}
	return v
}

func (e *Evaluator) evalAccess(n *ast.Access) value.Value {
	idx := e.evalExpr(n.Index)
	if idx.Kind != value.KindInt {
		fail("string index must be an integer")
	}
	container, ok := e.vars.Get(n.Container.Name())
	if !ok {
		fail("variable %q not defined", n.Container.Name())
	}
	if container.Kind != value.KindString {
		fail("index access is only valid on STRING")
	}
	i := idx.I
	if i < 0 || i >= int64(len(container.S)) {
		fail("index %d out of range for %q", i, n.Container.Name())
	}
	return value.Str(string(container.S[i]))
}

// evalLogical: `&&` short-circuits on a falsy left operand; `||` always
// evaluates both sides (spec.md §4.4 — not the short-circuit-on-true shape
// found in most languages).
func (e *Evaluator) evalLogical(n *ast.Logical) value.Value {
	left := e.evalExpr(n.Left)
	if n.Token.Value == "&&" {
		if !left.Truthy() {
			return left
		}
		return e.evalExpr(n.Right)
	}
	right := e.evalExpr(n.Right)
	if left.Truthy() {
		return left
	}
	return right
}

func (e *Evaluator) evalRelational(n *ast.Relational) value.Value {
	left := e.evalExpr(n.Left)
	right := e.evalExpr(n.Right)
	if left.IsNone() || right.IsNone() {
		return value.None()
	}
	switch n.Token.Value {
	case "==":
		return value.Bool(value.Equal(left, right))
	case "!=":
		return value.Bool(!value.Equal(left, right))
	default:
		cmp, err := value.Compare(left, right)
		if err != nil {
			fail("%s", err)
		}
		switch n.Token.Value {
		case ">":
			return value.Bool(cmp > 0)
		case "<":
			return value.Bool(cmp < 0)
		case ">=":
			return value.Bool(cmp >= 0)
		case "<=":
			return value.Bool(cmp <= 0)
		default:
			return value.None()
		}
	}
}

func (e *Evaluator) evalArithmetic(n *ast.Arithmetic) value.Value {
	left := e.evalExpr(n.Left)
	right := e.evalExpr(n.Right)
	if left.IsNone() || right.IsNone() {
		return value.None()
	}

	var (
		result value.Value
		err    error
	)
	switch n.Token.Value {
	case "+":
		result, err = value.Add(left, right)
	case "-":
		result, err = value.Sub(left, right)
	case "*":
		result, err = value.Mul(left, right)
	case "/":
		result, err = value.Div(left, right)
	case "%":
		result, err = value.Mod(left, right)
	}
	if err != nil {
		fail("%s", err)
	}
	return result
}

func (e *Evaluator) evalUnary(n *ast.Unary) value.Value {
	operand := e.evalExpr(n.Expr)
	if operand.IsNone() {
		return value.None()
	}
	switch n.Token.Tag {
	case token.BANG:
		return value.Not(operand)
	case token.MINUS:
		v, err := value.Negate(operand)
		if err != nil {
			fail("%s", err)
		}
		return v
	default:
		return operand
	}
}
