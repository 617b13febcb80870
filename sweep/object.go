package sweep

import "reflect"

type sourceEnum int

const (
	sourceUnknown sourceEnum = iota
	sourceMapping
	sourceRecord
)

// IsCombinatorialObject reports whether v is a configuration container
// whose every field value is an expandable collection of candidate
// values.
//
// Mappings (any Go map) and record instances (struct values, or non-nil
// pointers to structs) qualify as containers; anything else, including a
// reflect.Type standing for a record rather than being one, does not.
// Only exported record fields form the schema. A container with zero
// fields is vacuously combinatorial. The guard is total and never panics.
func IsCombinatorialObject(v any) bool {
	if _, ok := v.(reflect.Type); ok {
		return false
	}

	rv, src := dispatchSource(reflect.ValueOf(v))

	switch src {
	default:
		return false
	case sourceMapping:
		iter := rv.MapRange()
		for iter.Next() {
			if !isExpandable(iter.Value()) {
				return false
			}
		}
	case sourceRecord:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}

			if !isExpandable(rv.Field(i)) {
				return false
			}
		}
	}

	return true
}

// dispatchSource classifies the container shape of a candidate object.
// Pointers to structs dereference to the record they point at; a nil
// pointer is not an instance.
func dispatchSource(rv reflect.Value) (reflect.Value, sourceEnum) {
	switch rv.Kind() {
	default:
		return rv, sourceUnknown
	case reflect.Map:
		return rv, sourceMapping
	case reflect.Struct:
		return rv, sourceRecord
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return rv, sourceUnknown
		}

		return rv.Elem(), sourceRecord
	}
}
