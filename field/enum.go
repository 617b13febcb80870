package field

import (
	"reflect"

	"combinatorial-config/schema"
)

// IsEnumField reports whether v is a non-empty ordered sequence (slice or
// array) whose every element is enumerable: a primitive or the Undefined
// sentinel.
func IsEnumField(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return false
	case reflect.Slice, reflect.Array:
	}

	if rv.Len() == 0 {
		return false
	}

	for i := 0; i < rv.Len(); i++ {
		if !schema.IsEnumerable(rv.Index(i).Interface()) {
			return false
		}
	}

	return true
}
