package schema

// undefinedType is the dedicated one-member type behind the Undefined
// sentinel. The package-level instance is the only one that exists.
type undefinedType struct{}

func (*undefinedType) String() string { return "Undefined" }

// Undefined marks a field as explicitly unspecified, as opposed to absent
// or zero-valued. It is allocated at package load, so there is no
// lazy-initialization race, and it compares equal only to itself: check
// with v == Undefined or IsUndefined. It is never equal to nil, 0, false,
// or "".
var Undefined = &undefinedType{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	return v == Undefined
}
