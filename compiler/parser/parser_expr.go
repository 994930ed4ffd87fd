package parser

import (
	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/symtab"
	"github.com/minipar-lang/minipar/compiler/token"
)

// typeFromToken maps a lowercase TYPE token's lexeme to its AST type tag.
func typeFromToken(tok token.Token) ast.Type {
	switch tok.Value {
	case "number":
		return ast.NUMBER
	case "string":
		return ast.STRING
	case "bool":
		return ast.BOOL
	case "void":
		return ast.VOID
	default:
		return ast.VOID
	}
}

// disjunction := conjunction ( '||' conjunction )*
func (p *Parser) disjunction() ast.Expression {
	left := p.conjunction()
	for p.check(token.OR) {
		tok := p.advance()
		right := p.conjunction()
		left = ast.NewLogical(tok, left, right)
	}
	return left
}

// conjunction := equality ( '&&' equality )*
func (p *Parser) conjunction() ast.Expression {
	left := p.equality()
	for p.check(token.AND) {
		tok := p.advance()
		right := p.equality()
		left = ast.NewLogical(tok, left, right)
	}
	return left
}

// equality := comparison ( ('==' | '!=') comparison )*
func (p *Parser) equality() ast.Expression {
	left := p.comparison()
	for p.check(token.EQ) || p.check(token.NEQ) {
		tok := p.advance()
		right := p.comparison()
		left = ast.NewRelational(tok, left, right)
	}
	return left
}

// comparison := ari ( ('>' | '<' | '>=' | '<=') ari )*
func (p *Parser) comparison() ast.Expression {
	left := p.ari()
	for p.check(token.GT) || p.check(token.LT) || p.check(token.GTE) || p.check(token.LTE) {
		tok := p.advance()
		right := p.ari()
		left = ast.NewRelational(tok, left, right)
	}
	return left
}

// ari := term ( ('+' | '-') term )*
func (p *Parser) ari() ast.Expression {
	left := p.term()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		tok := p.advance()
		right := p.term()
		left = ast.NewArithmetic(left.ExprType(), tok, left, right)
	}
	return left
}

// term := unary ( ('*' | '/' | '%') unary )*
func (p *Parser) term() ast.Expression {
	left := p.unary()
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		tok := p.advance()
		right := p.unary()
		left = ast.NewArithmetic(left.ExprType(), tok, left, right)
	}
	return left
}

// unary := ('!' | '-') unary | primary
func (p *Parser) unary() ast.Expression {
	if p.check(token.BANG) || p.check(token.MINUS) {
		tok := p.advance()
		expr := p.unary()
		return ast.NewUnary(expr.ExprType(), tok, expr)
	}
	return p.primary()
}

// primary := '(' disjunction ')' | local | NUMBER | STRING | 'true' | 'false'
func (p *Parser) primary() ast.Expression {
	switch {
	case p.check(token.LPAREN):
		p.advance()
		expr := p.disjunction()
		p.expect(token.RPAREN, "')'")
		return expr
	case p.check(token.ID):
		return p.local()
	case p.check(token.NUMBER):
		tok := p.advance()
		return ast.NewConstant(ast.NUMBER, tok)
	case p.check(token.STRING):
		tok := p.advance()
		return ast.NewConstant(ast.STRING, tok)
	case p.check(token.TRUE):
		tok := p.advance()
		return ast.NewConstant(ast.BOOL, tok)
	case p.check(token.FALSE):
		tok := p.advance()
		return ast.NewConstant(ast.BOOL, tok)
	default:
		p.fail("expected an expression, found %q", p.peek().Value)
		return nil // unreachable: fail panics
	}
}

// local := ID ( ':' TYPE
//            | ( '[' ari ']' )? ( '.' ID )? ( '(' args? ')' )?
//            )?
func (p *Parser) local() ast.Expression {
	tok := p.expect(token.ID, "an identifier")

	if p.check(token.COLON) {
		p.advance()
		typeTok := p.expect(token.TYPE, "a type")
		typ := typeFromToken(typeTok)
		if !p.symtab.Insert(tok.Value, symtab.Symbol{Name: tok.Value, Type: typ}) {
			p.fail("variable %q already declared in this scope", tok.Value)
		}
		return ast.NewID(typ, tok, true)
	}

	sym, ok := p.symtab.Find(tok.Value)
	if !ok {
		p.fail("variable %q not declared", tok.Value)
	}

	var expr ast.Expression = ast.NewID(sym.Type, tok, false)

	if p.check(token.LBRACKET) {
		p.advance()
		idx := p.ari()
		p.expect(token.RBRACKET, "']'")
		expr = ast.NewAccess(sym.Type, tok, expr.(*ast.ID), idx)
	}

	oper := ""
	if p.check(token.DOT) {
		p.advance()
		operTok := p.expect(token.ID, "a method name")
		oper = operTok.Value
	}

	if p.check(token.LPAREN) {
		p.advance()
		args := p.args()
		p.expect(token.RPAREN, "')'")
		expr = ast.NewCall(ast.FUNC, tok, expr, args, oper)
	}

	return expr
}

// args := disjunction ( ',' disjunction )*
func (p *Parser) args() []ast.Expression {
	var args []ast.Expression
	if p.check(token.RPAREN) {
		return args
	}
	args = append(args, p.disjunction())
	for p.check(token.COMMA) {
		p.advance()
		args = append(args, p.disjunction())
	}
	return args
}
