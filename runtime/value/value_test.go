package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/runtime/value"
)

func TestParseNumberIntegerVsFloat(t *testing.T) {
	i, err := value.ParseNumber("42")
	require.NoError(t, err)
	assert.Equal(t, value.KindInt, i.Kind)

	f, err := value.ParseNumber("3.14")
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, f.Kind)

	d, err := value.ParseNumber(".5")
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, d.Kind)
}

func TestParseNumberRejectsMalformedLexeme(t *testing.T) {
	_, err := value.ParseNumber("12.34.56")
	assert.Error(t, err)
}

func TestTruthy(t *testing.T) {
	assert.False(t, value.None().Truthy())
	assert.False(t, value.Bool(false).Truthy())
	assert.True(t, value.Bool(true).Truthy())
	assert.False(t, value.Int(0).Truthy())
	assert.True(t, value.Int(1).Truthy())
	assert.False(t, value.Str("").Truthy())
	assert.True(t, value.Str("x").Truthy())
}

func TestAddStringConcatenation(t *testing.T) {
	r, err := value.Add(value.Str("foo"), value.Str("bar"))
	require.NoError(t, err)
	assert.Equal(t, "foobar", r.String())
}

func TestAddRejectsMixedStringAndNumber(t *testing.T) {
	_, err := value.Add(value.Str("foo"), value.Int(1))
	assert.Error(t, err)
}

func TestAddIntStaysInt(t *testing.T) {
	r, err := value.Add(value.Int(2), value.Int(3))
	require.NoError(t, err)
	assert.Equal(t, value.KindInt, r.Kind)
	assert.Equal(t, "5", r.String())
}

func TestAddPromotesToFloatWhenEitherOperandIsFloat(t *testing.T) {
	r, err := value.Add(value.Int(2), value.Float(0.5))
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, r.Kind)
	assert.Equal(t, "2.5", r.String())
}

func TestDivAlwaysProducesFloat(t *testing.T) {
	r, err := value.Div(value.Int(6), value.Int(3))
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, r.Kind)
}

func TestDivByZeroIsAnError(t *testing.T) {
	_, err := value.Div(value.Int(1), value.Int(0))
	assert.Error(t, err)
}

func TestModRequiresIntegerOperands(t *testing.T) {
	_, err := value.Mod(value.Float(1.5), value.Int(2))
	assert.Error(t, err)

	r, err := value.Mod(value.Int(7), value.Int(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.I)
}

func TestEqualAcrossIntAndFloat(t *testing.T) {
	assert.True(t, value.Equal(value.Int(2), value.Float(2.0)))
	assert.False(t, value.Equal(value.Int(2), value.Float(2.5)))
}

func TestEqualRejectsCrossKindNonNumeric(t *testing.T) {
	assert.False(t, value.Equal(value.Str("2"), value.Int(2)))
}

func TestCompareRequiresNumericOperands(t *testing.T) {
	_, err := value.Compare(value.Str("a"), value.Str("b"))
	assert.Error(t, err)

	cmp, err := value.Compare(value.Int(1), value.Int(2))
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
}

func TestNegateRequiresNumber(t *testing.T) {
	_, err := value.Negate(value.Str("x"))
	assert.Error(t, err)

	r, err := value.Negate(value.Int(5))
	require.NoError(t, err)
	assert.Equal(t, int64(-5), r.I)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "NUMBER", value.Int(1).TypeName())
	assert.Equal(t, "NUMBER", value.Float(1.5).TypeName())
	assert.Equal(t, "STRING", value.Str("x").TypeName())
	assert.Equal(t, "BOOL", value.Bool(true).TypeName())
	assert.Equal(t, "NONE", value.None().TypeName())
}
