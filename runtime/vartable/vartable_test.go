package vartable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/runtime/value"
	"github.com/minipar-lang/minipar/runtime/vartable"
)

func TestDeclareAndGet(t *testing.T) {
	tbl := vartable.New()
	tbl.Declare("x", value.Int(1))
	v, ok := tbl.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.I)
}

func TestGetMissingNameFails(t *testing.T) {
	tbl := vartable.New()
	_, ok := tbl.Get("missing")
	assert.False(t, ok)
}

func TestSetMutatesOwningOuterScope(t *testing.T) {
	outer := vartable.New()
	outer.Declare("x", value.Int(1))
	inner := outer.Nested()

	inner.Set("x", value.Int(2))

	v, _ := outer.Get("x")
	assert.Equal(t, int64(2), v.I, "Set should mutate the scope that owns the name, not shadow it")
}

func TestSetDeclaresInCurrentScopeWhenNameIsNew(t *testing.T) {
	outer := vartable.New()
	inner := outer.Nested()

	inner.Set("y", value.Int(5))

	_, foundInOuter := outer.Get("y")
	assert.False(t, foundInOuter)

	v, foundInInner := inner.Get("y")
	require.True(t, foundInInner)
	assert.Equal(t, int64(5), v.I)
}

func TestDeclareShadowsOuterScope(t *testing.T) {
	outer := vartable.New()
	outer.Declare("x", value.Int(1))
	inner := outer.Nested()
	inner.Declare("x", value.Int(99))

	v, _ := inner.Get("x")
	assert.Equal(t, int64(99), v.I)

	outerV, _ := outer.Get("x")
	assert.Equal(t, int64(1), outerV.I)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	outer := vartable.New()
	outer.Declare("x", value.Int(1))
	inner := outer.Nested()
	inner.Declare("y", value.Int(2))

	clone := inner.Clone()
	clone.Set("x", value.Int(100))
	clone.Declare("z", value.Int(3))

	origX, _ := outer.Get("x")
	assert.Equal(t, int64(1), origX.I, "mutating the clone must not affect the original chain")

	_, zInOriginal := inner.Get("z")
	assert.False(t, zInOriginal)
}

func TestCloneOfNilIsNil(t *testing.T) {
	var tbl *vartable.Table
	assert.Nil(t, tbl.Clone())
}
