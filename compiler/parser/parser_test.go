package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/lexer"
	"github.com/minipar-lang/minipar/compiler/parser"
)

func parse(t *testing.T, src string) (*ast.Module, bool) {
	t.Helper()
	toks, lexErrs := lexer.New(src, nil).ScanTokens()
	require.Empty(t, lexErrs, "unexpected lex errors")
	mod, errs := parser.New(toks).Parse()
	return mod, errs.HasErrors()
}

func TestParseAssignAndDeclaration(t *testing.T) {
	mod, hasErr := parse(t, `x: number = 1 + 2`)
	require.False(t, hasErr)
	require.Len(t, mod.Stmts, 1)

	assign, ok := mod.Stmts[0].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Left.Name())
	assert.True(t, assign.Left.Decl)
	assert.Equal(t, ast.NUMBER, assign.Left.ExprType())
}

func TestParseBareDeclarationWithoutInitializer(t *testing.T) {
	mod, hasErr := parse(t, "x: number\nx = 2 + 3\n")
	require.False(t, hasErr)
	require.Len(t, mod.Stmts, 2)

	decl, ok := mod.Stmts[0].(*ast.ID)
	require.True(t, ok, "bare declaration should parse as a standalone *ast.ID statement")
	assert.Equal(t, "x", decl.Name())
	assert.True(t, decl.Decl)

	assign, ok := mod.Stmts[1].(*ast.Assign)
	require.True(t, ok)
	assert.False(t, assign.Left.Decl, "the later x = ... mutates, it does not redeclare")
}

func TestParseUseBeforeDeclareFails(t *testing.T) {
	_, hasErr := parse(t, `x = 1`)
	assert.True(t, hasErr)
}

func TestParseRedeclarationInSameScopeFails(t *testing.T) {
	_, hasErr := parse(t, `
x: number = 1
x: number = 2
`)
	assert.True(t, hasErr)
}

func TestParseFuncDefAndCall(t *testing.T) {
	mod, hasErr := parse(t, `
func add(a: number, b: number = 1) -> number {
	return a + b
}
r: number = add(1, 2)
`)
	require.False(t, hasErr)
	require.Len(t, mod.Stmts, 2)

	fn, ok := mod.Stmts[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, ast.NUMBER, fn.ReturnType)
	assert.Equal(t, 2, fn.Params.Len())
	assert.Equal(t, 1, fn.Params.NondefaultCount())

	assign, ok := mod.Stmts[1].(*ast.Assign)
	require.True(t, ok)
	call, ok := assign.Right.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "add", call.CalleeName())
	assert.Len(t, call.Args, 2)
}

func TestParseCallingUndeclaredFunctionFails(t *testing.T) {
	_, hasErr := parse(t, `x: number = add(1, 2)`)
	assert.True(t, hasErr)
}

func TestParseIfElseChain(t *testing.T) {
	mod, hasErr := parse(t, `
x: number = 1
if (x > 0) {
	print(x)
} else {
	if (x < 0) {
		print(x)
	} else {
		print(x)
	}
}
`)
	require.False(t, hasErr)
	require.Len(t, mod.Stmts, 2)

	ifStmt, ok := mod.Stmts[1].(*ast.If)
	require.True(t, ok)
	require.Len(t, ifStmt.Else, 1)
	_, ok = ifStmt.Else[0].(*ast.If)
	assert.True(t, ok)
}

func TestParseWhileBreakContinue(t *testing.T) {
	mod, hasErr := parse(t, `
i: number = 0
while (i < 10) {
	if (i == 5) {
		break
	}
	continue
	i = i + 1
}
`)
	require.False(t, hasErr)
	while, ok := mod.Stmts[1].(*ast.While)
	require.True(t, ok)
	require.Len(t, while.Body, 3)
}

func TestParseParAndSeq(t *testing.T) {
	mod, hasErr := parse(t, `
par {
	print("a")
	print("b")
}
seq {
	print("c")
}
`)
	require.False(t, hasErr)
	require.Len(t, mod.Stmts, 2)
	par, ok := mod.Stmts[0].(*ast.Par)
	require.True(t, ok)
	assert.Len(t, par.Body, 2)
	_, ok = mod.Stmts[1].(*ast.Seq)
	assert.True(t, ok)
}

func TestParseCChannelAndSend(t *testing.T) {
	mod, hasErr := parse(t, `
c_channel conn{"localhost", 9000}
conn.send("hello")
`)
	require.False(t, hasErr)
	require.Len(t, mod.Stmts, 2)

	ch, ok := mod.Stmts[0].(*ast.CChannel)
	require.True(t, ok)
	assert.Equal(t, "conn", ch.Name)

	call, ok := mod.Stmts[1].(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "send", call.CalleeName())
	assert.Equal(t, "conn", call.Token.Value)
}

func TestParseSChannel(t *testing.T) {
	mod, hasErr := parse(t, `
func handle(msg: string) -> string {
	return msg
}
s_channel srv{handle, "echo server", "0.0.0.0", 9000}
`)
	require.False(t, hasErr)
	sch, ok := mod.Stmts[1].(*ast.SChannel)
	require.True(t, ok)
	assert.Equal(t, "srv", sch.Name)
	assert.Equal(t, "handle", sch.FuncName)
}

func TestParseStopsAtFirstSyntaxError(t *testing.T) {
	toks, lexErrs := lexer.New(`x: number = `, nil).ScanTokens()
	require.Empty(t, lexErrs)
	_, errs := parser.New(toks).Parse()
	require.True(t, errs.HasErrors())
	assert.Len(t, errs, 1)
}
