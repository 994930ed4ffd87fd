package parser

import (
	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/symtab"
	"github.com/minipar-lang/minipar/compiler/token"
)

// statementStart is the STATEMENT_TOKENS set: the tags that may open a
// statement. FOR has no Minipar statement form and ELSE never starts a
// statement on its own, so neither appears here.
var statementStart = map[token.Tag]bool{
	token.ID:        true,
	token.FUNC:      true,
	token.IF:        true,
	token.WHILE:     true,
	token.RETURN:    true,
	token.BREAK:     true,
	token.CONTINUE:  true,
	token.SEQ:       true,
	token.PAR:       true,
	token.C_CHANNEL: true,
	token.S_CHANNEL: true,
}

// stmts := stmt*, stopping as soon as the next token can't start a statement
// (normally '}' or EOF).
func (p *Parser) stmts() ast.Body {
	var body ast.Body
	for statementStart[p.peek().Tag] {
		body = append(body, p.stmt())
	}
	return body
}

func (p *Parser) stmt() ast.Statement {
	switch p.peek().Tag {
	case token.ID:
		return p.assignOrCall()
	case token.FUNC:
		return p.funcdef()
	case token.IF:
		return p.ifStmt()
	case token.WHILE:
		return p.whileStmt()
	case token.RETURN:
		return p.returnStmt()
	case token.BREAK:
		p.advance()
		return &ast.Break{}
	case token.CONTINUE:
		p.advance()
		return &ast.Continue{}
	case token.SEQ:
		p.advance()
		return &ast.Seq{Body: p.block(nil)}
	case token.PAR:
		p.advance()
		return &ast.Par{Body: p.block(nil)}
	case token.C_CHANNEL:
		return p.cchannelStmt()
	case token.S_CHANNEL:
		return p.schannelStmt()
	default:
		p.fail("expected a statement, found %q", p.peek().Value)
		return nil // unreachable: fail panics
	}
}

// assignOrCall covers the statement forms that start with an identifier:
// `x: number` (a bare declaration, no initializer), `x = expr` (declaration
// with an initializer, or a plain mutation of an already-declared name), and
// a bare call used for its side effect (`send(...)`, `close()`, a user
// function call). Per the grammar `assign_or_call := local ( '=' disjunction )?`,
// the `= disjunction` tail is optional.
func (p *Parser) assignOrCall() ast.Statement {
	left := p.local()
	switch l := left.(type) {
	case *ast.Call:
		return l
	case *ast.ID:
		if !p.check(token.ASSIGN) {
			return l
		}
		p.advance()
		right := p.disjunction()
		return &ast.Assign{Left: l, Right: right}
	default:
		p.fail("expected an assignment or a call statement")
		return nil // unreachable: fail panics
	}
}

// block parses `'{' stmts '}'` in a freshly nested scope. When params is
// non-nil (a function body), its names are seeded into that scope first.
func (p *Parser) block(params *ast.Parameters) ast.Body {
	p.expect(token.LBRACE, "'{'")
	outer := p.symtab
	p.symtab = outer.Nested()
	if params != nil {
		for _, name := range params.Order {
			p.symtab.Insert(name, symtab.Symbol{Name: name, Type: params.Types[name]})
		}
	}
	body := p.stmts()
	p.expect(token.RBRACE, "'}'")
	p.symtab = outer
	return body
}

// funcdef := 'func' ID params '->' TYPE block
func (p *Parser) funcdef() ast.Statement {
	p.advance()
	name := p.declareName(ast.FUNC)
	params := p.params()
	p.expect(token.RARROW, "'->'")
	retTypeTok := p.expect(token.TYPE, "a return type")
	retType := typeFromToken(retTypeTok)
	body := p.block(params)
	return &ast.FuncDef{Name: name, ReturnType: retType, Params: params, Body: body}
}

// params := '(' ( param ( ',' param )* )? ')'
func (p *Parser) params() *ast.Parameters {
	p.expect(token.LPAREN, "'('")
	params := ast.NewParameters()
	if !p.check(token.RPAREN) {
		p.param(params)
		for p.check(token.COMMA) {
			p.advance()
			p.param(params)
		}
	}
	p.expect(token.RPAREN, "')'")
	return params
}

// param := ID ':' TYPE ( '=' disjunction )?
func (p *Parser) param(params *ast.Parameters) {
	nameTok := p.expect(token.ID, "a parameter name")
	if params.Has(nameTok.Value) {
		p.fail("duplicate parameter %q", nameTok.Value)
	}
	p.expect(token.COLON, "':'")
	typeTok := p.expect(token.TYPE, "a type")
	typ := typeFromToken(typeTok)
	var def ast.Expression
	if p.check(token.ASSIGN) {
		p.advance()
		def = p.disjunction()
	}
	params.Add(nameTok.Value, typ, def)
}

// ifStmt := 'if' '(' disjunction ')' block ( 'else' block )?
//
// There is no dedicated "else if" form: chaining requires writing the
// nested if inside the else block's own braces, matching the reference
// parser (its else branch always calls block(), which demands a literal
// '{').
func (p *Parser) ifStmt() ast.Statement {
	p.advance()
	p.expect(token.LPAREN, "'('")
	cond := p.disjunction()
	p.expect(token.RPAREN, "')'")
	body := p.block(nil)

	var elseBody ast.Body
	if p.check(token.ELSE) {
		p.advance()
		elseBody = p.block(nil)
	}
	return &ast.If{Cond: cond, Body: body, Else: elseBody}
}

// whileStmt := 'while' '(' disjunction ')' block
func (p *Parser) whileStmt() ast.Statement {
	p.advance()
	p.expect(token.LPAREN, "'('")
	cond := p.disjunction()
	p.expect(token.RPAREN, "')'")
	body := p.block(nil)
	return &ast.While{Cond: cond, Body: body}
}

// returnStmt := 'return' disjunction
//
// The grammar always requires a value; a VOID function simply never
// contains a return statement and falls off the end of its body instead.
func (p *Parser) returnStmt() ast.Statement {
	p.advance()
	expr := p.disjunction()
	return &ast.Return{Expr: expr}
}

// cchannelStmt := 'c_channel' ID '{' ari ',' ari '}'
func (p *Parser) cchannelStmt() ast.Statement {
	p.advance()
	name := p.declareName(ast.CCHANNEL)
	p.expect(token.LBRACE, "'{'")
	host := p.ari()
	p.expect(token.COMMA, "','")
	port := p.ari()
	p.expect(token.RBRACE, "'}'")
	return &ast.CChannel{Name: name, Host: host, Port: port}
}

// schannelStmt := 's_channel' ID '{' ID ',' ari ',' ari ',' ari '}'
//
// The argument order (func name, description, host, port) follows the
// original parser's literal grammar-slot binding, not the prose field order
// spec.md §3 happens to list SChannel's struct fields in.
func (p *Parser) schannelStmt() ast.Statement {
	p.advance()
	name := p.declareName(ast.SCHANNEL)
	p.expect(token.LBRACE, "'{'")
	funcName := p.referenceFuncName()
	p.expect(token.COMMA, "','")
	description := p.ari()
	p.expect(token.COMMA, "','")
	host := p.ari()
	p.expect(token.COMMA, "','")
	port := p.ari()
	p.expect(token.RBRACE, "'}'")
	return &ast.SChannel{Name: name, FuncName: funcName, Description: description, Host: host, Port: port}
}

// declareName binds a fresh ID of the given bookkeeping type into the
// current scope, rejecting a name already visible anywhere in the enclosing
// chain (matches the reference parser's `var` helper).
func (p *Parser) declareName(idType ast.Type) string {
	tok := p.expect(token.ID, "an identifier")
	if _, found := p.symtab.Find(tok.Value); found {
		p.fail("name %q already declared", tok.Value)
	}
	p.symtab.Insert(tok.Value, symtab.Symbol{Name: tok.Value, Type: idType})
	return tok.Value
}

// referenceFuncName resolves an already-declared function name (the
// callback bound to an s_channel).
func (p *Parser) referenceFuncName() string {
	tok := p.expect(token.ID, "a function name")
	if _, found := p.symtab.Find(tok.Value); !found {
		p.fail("function %q not declared", tok.Value)
	}
	return tok.Value
}
