package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/compiler/symtab"
)

func TestInsertAndFind(t *testing.T) {
	tbl := symtab.New()
	ok := tbl.Insert("x", symtab.Symbol{Name: "x", Type: ast.NUMBER})
	require.True(t, ok)

	sym, found := tbl.Find("x")
	require.True(t, found)
	assert.Equal(t, ast.NUMBER, sym.Type)
}

func TestInsertRejectsRedeclarationInSameScope(t *testing.T) {
	tbl := symtab.New()
	tbl.Insert("x", symtab.Symbol{Name: "x", Type: ast.NUMBER})

	ok := tbl.Insert("x", symtab.Symbol{Name: "x", Type: ast.STRING})
	assert.False(t, ok)
}

func TestNestedScopeCanShadowOuter(t *testing.T) {
	outer := symtab.New()
	outer.Insert("x", symtab.Symbol{Name: "x", Type: ast.NUMBER})
	inner := outer.Nested()

	ok := inner.Insert("x", symtab.Symbol{Name: "x", Type: ast.STRING})
	assert.True(t, ok, "shadowing an outer declaration in a nested scope must be allowed")

	sym, _ := inner.Find("x")
	assert.Equal(t, ast.STRING, sym.Type)

	outerSym, _ := outer.Find("x")
	assert.Equal(t, ast.NUMBER, outerSym.Type)
}

func TestFindWalksOuterScopes(t *testing.T) {
	outer := symtab.New()
	outer.Insert("x", symtab.Symbol{Name: "x", Type: ast.BOOL})
	inner := outer.Nested().Nested()

	sym, found := inner.Find("x")
	require.True(t, found)
	assert.Equal(t, ast.BOOL, sym.Type)
}

func TestFindMissingNameFails(t *testing.T) {
	tbl := symtab.New()
	_, found := tbl.Find("nope")
	assert.False(t, found)
}
