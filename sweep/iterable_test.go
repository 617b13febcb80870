package sweep

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExpandable_FuncShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"iter.Seq of int", func(func(int) bool) {}, true},
		{"iter.Seq of any", func(func(any) bool) {}, true},

		{"no args", func() {}, false},
		{"two args", func(func(int) bool, int) {}, false},
		{"variadic", func(...func(int) bool) {}, false},
		{"yield without result", func(func(int)) {}, false},
		{"yield with non-bool result", func(func(int) int) {}, false},
		{"non-func arg", func(int) {}, false},
		{"has return value", func(func(int) bool) error { return nil }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, isExpandable(reflect.ValueOf(tt.value)))
		})
	}
}

func TestIsExpandable_Strings(t *testing.T) {
	t.Parallel()

	// strings and string-kinded named types are atomic, not collections
	type label string

	assert.False(t, isExpandable(reflect.ValueOf("abc")))
	assert.False(t, isExpandable(reflect.ValueOf(label("abc"))))

	// but a byte sequence is a slice and therefore expandable
	assert.True(t, isExpandable(reflect.ValueOf([]byte("abc"))))
}
