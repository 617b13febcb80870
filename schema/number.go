package schema

import (
	"reflect"
	"strconv"
)

// Number is an immutable numeric value that keeps the integer/float
// distinction of its source. Integers of any width are widened to int64,
// floats to float64; the distinction itself is never coerced away.
// Numbers are comparable with ==. The zero value is the integer 0.
type Number struct {
	f     float64
	i     int64
	float bool
}

// Int returns a Number holding an integer value.
func Int(v int64) Number { return Number{i: v} }

// Float returns a Number holding a floating-point value.
func Float(v float64) Number { return Number{f: v, float: true} }

// NumberOf converts any Go numeric value into a Number. The second result
// is false when v does not classify as a number.
func NumberOf(v any) (Number, bool) {
	kind := FromValue(v)
	if !kind.IsNumber() {
		return Number{}, false
	}

	rv := reflect.ValueOf(v)
	switch {
	default:
		return Int(rv.Int()), true
	case kind.IsFloat():
		return Float(rv.Float()), true
	case kind.IsUnsigned():
		return Int(int64(rv.Uint())), true
	}
}

// IsFloat reports whether the value carries a floating-point number.
func (n Number) IsFloat() bool { return n.float }

// Int returns the value as int64. Floats truncate toward zero.
func (n Number) Int() int64 {
	if n.float {
		return int64(n.f)
	}

	return n.i
}

// Float returns the value as float64.
func (n Number) Float() float64 {
	if n.float {
		return n.f
	}

	return float64(n.i)
}

// Value returns the underlying value: int64 for integers, float64 for
// floats.
func (n Number) Value() any {
	if n.float {
		return n.f
	}

	return n.i
}

func (n Number) String() string {
	if n.float {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}

	return strconv.FormatInt(n.i, 10)
}
