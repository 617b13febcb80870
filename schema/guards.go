package schema

// IsNumber reports whether v is an integer or floating-point value.
func IsNumber(v any) bool { return FromValue(v).IsNumber() }

// IsPrimitive reports whether v is a number, a string, or a boolean.
func IsPrimitive(v any) bool { return FromValue(v).IsPrimitive() }

// IsEnumerable reports whether v may appear inside an enum field: a
// primitive or the Undefined sentinel.
func IsEnumerable(v any) bool { return FromValue(v).IsEnumerable() }
