package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combinatorial-config/schema"
)

func TestNumberOf(t *testing.T) {
	t.Parallel()

	t.Run("integers widen to int64", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{int(7), int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint64(7)} {
			n, ok := schema.NumberOf(v)
			require.True(t, ok, "%T must convert", v)
			assert.False(t, n.IsFloat())
			assert.Equal(t, int64(7), n.Int())
			assert.Equal(t, schema.Int(7), n)
		}
	})

	t.Run("floats widen to float64", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{float32(0.5), float64(0.5)} {
			n, ok := schema.NumberOf(v)
			require.True(t, ok, "%T must convert", v)
			assert.True(t, n.IsFloat())
			assert.Equal(t, schema.Float(0.5), n)
		}
	})

	t.Run("non-numbers rejected", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{"7", true, nil, schema.Undefined, []int{7}} {
			_, ok := schema.NumberOf(v)
			assert.False(t, ok, "%T must not convert", v)
		}
	})
}

func TestNumberAccessors(t *testing.T) {
	t.Parallel()

	i := schema.Int(3)
	assert.Equal(t, int64(3), i.Int())
	assert.Equal(t, float64(3), i.Float())
	assert.Equal(t, any(int64(3)), i.Value())
	assert.Equal(t, "3", i.String())

	f := schema.Float(2.5)
	assert.Equal(t, int64(2), f.Int()) // truncates toward zero
	assert.Equal(t, 2.5, f.Float())
	assert.Equal(t, any(2.5), f.Value())
	assert.Equal(t, "2.5", f.String())

	// the int/float distinction survives equal magnitudes
	assert.NotEqual(t, schema.Int(1), schema.Float(1))

	var zero schema.Number
	assert.Equal(t, schema.Int(0), zero)
}
