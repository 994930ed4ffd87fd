// Package ast defines the Minipar abstract syntax tree: one Go type per node
// kind from spec.md §3, dispatched by type switch rather than reflection.
package ast

import "github.com/minipar-lang/minipar/compiler/token"

// Type is the small closed set of value types the type-checker and
// evaluator reason about. FUNC is an internal bookkeeping type, never a
// value type a program variable can hold.
type Type string

const (
	NUMBER Type = "NUMBER"
	STRING Type = "STRING"
	BOOL   Type = "BOOL"
	VOID   Type = "VOID"
	FUNC   Type = "FUNC"

	// CCHANNEL and SCHANNEL mark channel-name symbol-table entries so the
	// parser and semantic analyzer can tell a channel name apart from a
	// same-spelled variable or function; no expression ever carries them.
	CCHANNEL Type = "CCHANNEL"
	SCHANNEL Type = "SCHANNEL"
)

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Expression is any node that produces a value and carries a static type.
type Expression interface {
	Node
	ExprType() Type
	Tok() token.Token
}

// Statement is any node executed for effect.
type Statement interface {
	Node
}

// Body is an ordered list of statements (a block's contents, or a par/seq
// block's children).
type Body []Statement

// Parameters preserves declaration order (map iteration order is undefined
// in Go, so we pair a name list with a lookup map).
type Parameters struct {
	Order   []string
	Types   map[string]Type
	Default map[string]Expression // absent entries have no default
}

func NewParameters() *Parameters {
	return &Parameters{Types: map[string]Type{}, Default: map[string]Expression{}}
}

func (p *Parameters) Add(name string, typ Type, def Expression) {
	if _, exists := p.Types[name]; !exists {
		p.Order = append(p.Order, name)
	}
	p.Types[name] = typ
	if def != nil {
		p.Default[name] = def
	}
}

func (p *Parameters) Has(name string) bool {
	_, ok := p.Types[name]
	return ok
}

func (p *Parameters) Len() int { return len(p.Order) }

// NondefaultCount returns how many parameters have no default expression —
// the minimum number of call arguments required.
func (p *Parameters) NondefaultCount() int {
	n := 0
	for _, name := range p.Order {
		if _, hasDefault := p.Default[name]; !hasDefault {
			n++
		}
	}
	return n
}

// ---- expressions ----

type base struct {
	Type  Type
	Token token.Token
}

func (base) node()              {}
func (b base) ExprType() Type   { return b.Type }
func (b base) Tok() token.Token { return b.Token }

// Constant is a literal NUMBER/STRING/BOOL.
type Constant struct{ base }

func NewConstant(typ Type, tok token.Token) *Constant {
	return &Constant{base{Type: typ, Token: tok}}
}

// ID is a variable reference; Decl marks the declaration site (`x: number`).
type ID struct {
	base
	Decl bool
}

func NewID(typ Type, tok token.Token, decl bool) *ID {
	return &ID{base: base{Type: typ, Token: tok}, Decl: decl}
}

// Name is the identifier text this node refers to.
func (id *ID) Name() string { return id.Token.Value }

// Access is string indexing: container[index].
type Access struct {
	base
	Container *ID
	Index     Expression
}

func NewAccess(typ Type, tok token.Token, container *ID, index Expression) *Access {
	return &Access{base: base{Type: typ, Token: tok}, Container: container, Index: index}
}

// Logical is && or ||, distinguished by Token.Value.
type Logical struct {
	base
	Left, Right Expression
}

func NewLogical(tok token.Token, left, right Expression) *Logical {
	return &Logical{base: base{Type: BOOL, Token: tok}, Left: left, Right: right}
}

// Relational is ==, !=, <, >, <=, >=.
type Relational struct {
	base
	Left, Right Expression
}

func NewRelational(tok token.Token, left, right Expression) *Relational {
	return &Relational{base: base{Type: BOOL, Token: tok}, Left: left, Right: right}
}

// Arithmetic is +, -, *, /, %.
type Arithmetic struct {
	base
	Left, Right Expression
}

func NewArithmetic(typ Type, tok token.Token, left, right Expression) *Arithmetic {
	return &Arithmetic{base: base{Type: typ, Token: tok}, Left: left, Right: right}
}

// Unary is ! or unary -.
type Unary struct {
	base
	Expr Expression
}

func NewUnary(typ Type, tok token.Token, expr Expression) *Unary {
	return &Unary{base: base{Type: typ, Token: tok}, Expr: expr}
}

// Call is a function call. Receiver is the receiver expression when written
// `obj.method(args)` (only `send`/`close` use this form; Token.Value then
// carries the channel name). Oper is the dotted method name in that case.
type Call struct {
	base
	Receiver Expression
	Args     []Expression
	Oper     string
}

func NewCall(typ Type, tok token.Token, receiver Expression, args []Expression, oper string) *Call {
	return &Call{base: base{Type: typ, Token: tok}, Receiver: receiver, Args: args, Oper: oper}
}

// CalleeName is the name used to resolve this call: Oper if set (method
// form), else the token's literal text (plain function name).
func (c *Call) CalleeName() string {
	if c.Oper != "" {
		return c.Oper
	}
	return c.Token.Value
}

// ---- statements ----

// Module is the top-level statement sequence.
type Module struct {
	Stmts Body
}

func (*Module) node() {}

// Assign is `left = right`; left is always an *ID.
type Assign struct {
	Left  *ID
	Right Expression
}

func (*Assign) node() {}

// Return propagates a value out of the enclosing function.
type Return struct{ Expr Expression }

func (*Return) node() {}

// Break exits the innermost enclosing while loop.
type Break struct{}

func (*Break) node() {}

// Continue resumes the innermost enclosing while loop.
type Continue struct{}

func (*Continue) node() {}

// FuncDef declares a named function.
type FuncDef struct {
	Name       string
	ReturnType Type
	Params     *Parameters
	Body       Body
}

func (*FuncDef) node() {}

// If is a conditional with an optional else branch.
type If struct {
	Cond Expression
	Body Body
	Else Body // nil if absent
}

func (*If) node() {}

// While is a pre-tested loop (per REDESIGN FLAG (b): condition evaluated at
// the top of every iteration).
type While struct {
	Cond Expression
	Body Body
}

func (*While) node() {}

// Par runs each statement in Body concurrently and joins before continuing.
type Par struct{ Body Body }

func (*Par) node() {}

// Seq is a structural no-op: its body is parsed and type-checked, but the
// evaluator never executes it.
type Seq struct{ Body Body }

func (*Seq) node() {}

// CChannel opens a client TCP channel bound to Name.
type CChannel struct {
	Name string
	Host Expression
	Port Expression
}

func (*CChannel) node() {}

// SChannel binds a listening TCP channel to a previously declared function.
type SChannel struct {
	Name        string
	FuncName    string
	Description Expression
	Host        Expression
	Port        Expression
}

func (*SChannel) node() {}
