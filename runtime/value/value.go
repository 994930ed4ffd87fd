// Package value implements Minipar's runtime value representation: numbers
// (integer or floating, per spec.md §4.4), strings, booleans, and an
// implicit "none" standing in for "no value" — together with the primitive
// operations the evaluator composes to run arithmetic, relational, and
// logical expressions.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags which alternative of the runtime value union is populated.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

// Value is a tagged union over Minipar's runtime value types. Only the
// field matching Kind is meaningful.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	S    string
	B    bool
}

func None() Value           { return Value{Kind: KindNone} }
func Int(i int64) Value     { return Value{Kind: KindInt, I: i} }
func Float(f float64) Value { return Value{Kind: KindFloat, F: f} }
func Str(s string) Value    { return Value{Kind: KindString, S: s} }
func Bool(b bool) Value     { return Value{Kind: KindBool, B: b} }

// ParseNumber turns a NUMBER token's lexeme into a Value, integer if the
// lexeme has no embedded '.', floating otherwise (spec.md §4.4/§9).
func ParseNumber(lexeme string) (Value, error) {
	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return None(), fmt.Errorf("malformed number literal %q", lexeme)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return None(), fmt.Errorf("malformed number literal %q", lexeme)
	}
	return Int(i), nil
}

func (v Value) IsNone() bool   { return v.Kind == KindNone }
func (v Value) IsNumber() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// Truthy is the value's boolean interpretation, used by if/while conditions
// and by the `&&`/`||` operators.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNone:
		return false
	case KindBool:
		return v.B
	case KindInt:
		return v.I != 0
	case KindFloat:
		return v.F != 0
	case KindString:
		return v.S != ""
	default:
		return false
	}
}

// AsFloat64 views a numeric value as a float64, for promotion in mixed
// int/float arithmetic.
func (v Value) AsFloat64() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.I)
	case KindFloat:
		return v.F
	default:
		return 0
	}
}

// String renders the value's textual form, used by print, to_string, and
// the channel wire protocol (which always sends text).
func (v Value) String() string {
	switch v.Kind {
	case KindNone:
		return ""
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case KindString:
		return v.S
	default:
		return ""
	}
}

// TypeName names the value's kind the way runtime error messages refer to
// it: NUMBER, STRING, BOOL, or NONE.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindInt, KindFloat:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindBool:
		return "BOOL"
	default:
		return "NONE"
	}
}

// bothNumbers reports whether a and b are both numbers (int or float).
func bothNumbers(a, b Value) bool { return a.IsNumber() && b.IsNumber() }

// Add implements '+': numeric addition (promoting to float if either side
// is floating) or string concatenation.
func Add(a, b Value) (Value, error) {
	switch {
	case a.Kind == KindString && b.Kind == KindString:
		return Str(a.S + b.S), nil
	case bothNumbers(a, b):
		return numericBinOp(a, b, func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y }), nil
	default:
		return None(), fmt.Errorf("cannot add %s and %s", a.TypeName(), b.TypeName())
	}
}

// Sub implements '-': numeric subtraction only.
func Sub(a, b Value) (Value, error) {
	if !bothNumbers(a, b) {
		return None(), fmt.Errorf("'-' requires NUMBER operands, found %s and %s", a.TypeName(), b.TypeName())
	}
	return numericBinOp(a, b, func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y }), nil
}

// Mul implements '*': numeric multiplication only.
func Mul(a, b Value) (Value, error) {
	if !bothNumbers(a, b) {
		return None(), fmt.Errorf("'*' requires NUMBER operands, found %s and %s", a.TypeName(), b.TypeName())
	}
	return numericBinOp(a, b, func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y }), nil
}

// Div implements '/': always real-valued division, per spec.md §4.4.
func Div(a, b Value) (Value, error) {
	if !bothNumbers(a, b) {
		return None(), fmt.Errorf("'/' requires NUMBER operands, found %s and %s", a.TypeName(), b.TypeName())
	}
	if b.AsFloat64() == 0 {
		return None(), fmt.Errorf("division by zero")
	}
	return Float(a.AsFloat64() / b.AsFloat64()), nil
}

// Mod implements '%', defined only when both operands are integer-valued.
func Mod(a, b Value) (Value, error) {
	if a.Kind != KindInt || b.Kind != KindInt {
		return None(), fmt.Errorf("'%%' requires integer operands, found %s and %s", a.TypeName(), b.TypeName())
	}
	if b.I == 0 {
		return None(), fmt.Errorf("division by zero")
	}
	return Int(a.I % b.I), nil
}

// Negate implements unary '-'.
func Negate(a Value) (Value, error) {
	switch a.Kind {
	case KindInt:
		return Int(-a.I), nil
	case KindFloat:
		return Float(-a.F), nil
	default:
		return None(), fmt.Errorf("unary '-' requires NUMBER, found %s", a.TypeName())
	}
}

// Not implements unary '!'.
func Not(a Value) Value { return Bool(!a.Truthy()) }

func numericBinOp(a, b Value, ints func(x, y int64) int64, floats func(x, y float64) float64) Value {
	if a.Kind == KindInt && b.Kind == KindInt {
		return Int(ints(a.I, b.I))
	}
	return Float(floats(a.AsFloat64(), b.AsFloat64()))
}

// Equal implements '=='/'!=' across matching-type operands (numbers compare
// across int/float representations).
func Equal(a, b Value) bool {
	if bothNumbers(a, b) {
		return a.AsFloat64() == b.AsFloat64()
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindString:
		return a.S == b.S
	case KindBool:
		return a.B == b.B
	case KindNone:
		return true
	default:
		return false
	}
}

// Compare implements '<','>','<=','>=', defined only for numeric operands.
func Compare(a, b Value) (int, error) {
	if !bothNumbers(a, b) {
		return 0, fmt.Errorf("comparison requires NUMBER operands, found %s and %s", a.TypeName(), b.TypeName())
	}
	af, bf := a.AsFloat64(), b.AsFloat64()
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}
