package field

import (
	"reflect"

	"combinatorial-config/schema"
)

// maxRangeLen bounds a range descriptor: (stop), (start, stop), or
// (start, stop, step).
const maxRangeLen = 3

// NormalizedRange is the canonical (start, stop, step) form of a range
// field descriptor, produced only by Normalize.
type NormalizedRange struct {
	Start, Stop, Step schema.Number
}

// IsRangeField reports whether v is an ordered fixed sequence (slice or
// array, no other container shape) of 1 to 3 numeric elements.
func IsRangeField(v any) bool {
	_, ok := rangeElements(v)
	return ok
}

// Normalize maps any valid range descriptor shape onto the canonical
// (start, stop, step) triple. An omitted start defaults to 0, an omitted
// step to 1. Element numeric types are preserved, never coerced, so
// Normalize is the identity on already-canonical input.
func Normalize(v any) (NormalizedRange, error) {
	elems, ok := rangeElements(v)
	if !ok {
		return NormalizedRange{}, &InvalidRangeFieldError{Value: v}
	}

	switch len(elems) {
	default:
		return NormalizedRange{Start: elems[0], Stop: elems[1], Step: elems[2]}, nil
	case 1:
		return NormalizedRange{Start: schema.Int(0), Stop: elems[0], Step: schema.Int(1)}, nil
	case 2:
		return NormalizedRange{Start: elems[0], Stop: elems[1], Step: schema.Int(1)}, nil
	}
}

// rangeElements extracts the numeric elements of a range descriptor, or
// reports false when v violates the shape contract.
func rangeElements(v any) ([]schema.Number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return nil, false
	case reflect.Slice, reflect.Array:
	}

	if rv.Len() < 1 || rv.Len() > maxRangeLen {
		return nil, false
	}

	elems := make([]schema.Number, 0, rv.Len())

	for i := 0; i < rv.Len(); i++ {
		n, ok := schema.NumberOf(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}

		elems = append(elems, n)
	}

	return elems, true
}
