package sweep

import "reflect"

// isExpandable reports whether a field value belongs to the closed set of
// expandable collection shapes: slice, array, map, channel, or an
// iter.Seq-shaped push function. The string kind lands in the default
// case on purpose: strings are atomic values, not collections.
func isExpandable(rv reflect.Value) bool {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	default:
		return false
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	case reflect.Func:
		return isSeqFunc(rv.Type())
	}
}

// isSeqFunc matches the iter.Seq shape: func(yield func(E) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}

	yield := t.In(0)

	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}
