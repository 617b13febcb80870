package field

import "github.com/davecgh/go-spew/spew"

// InvalidRangeFieldError reports a value that fails the range field
// contract: wrong container shape, wrong length, a non-numeric element,
// or a zero step at expansion time. It carries the rejected value so the
// caller can display it.
type InvalidRangeFieldError struct {
	Value any
}

func (e *InvalidRangeFieldError) Error() string {
	return "invalid range field: " + spew.Sprintf("%#v", e.Value)
}
