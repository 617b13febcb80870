package field

import (
	"math"

	"combinatorial-config/schema"
)

// ToList normalizes v and materializes the ordered half-open sequence
// start, start+step, start+2*step, ... stopping strictly before stop.
//
// An all-integer descriptor expands with integer arithmetic and yields
// integer Numbers. Any float element promotes the whole expansion to
// float64: the element count is ceil((stop-start)/step) and the last
// element may undershoot stop due to rounding, which is accepted and not
// corrected. A step whose sign disagrees with stop-start yields an empty
// sequence; a zero step fails with InvalidRangeFieldError since the walk
// would never terminate.
//
// ToList is pure and restartable: repeated calls with the same descriptor
// return equal fresh slices.
func ToList(v any) ([]schema.Number, error) {
	nr, err := Normalize(v)
	if err != nil {
		return nil, err
	}

	if nr.Step.Float() == 0 {
		return nil, &InvalidRangeFieldError{Value: v}
	}

	if nr.Start.IsFloat() || nr.Stop.IsFloat() || nr.Step.IsFloat() {
		return expandFloat(nr.Start.Float(), nr.Stop.Float(), nr.Step.Float()), nil
	}

	return expandInt(nr.Start.Int(), nr.Stop.Int(), nr.Step.Int()), nil
}

func expandInt(start, stop, step int64) []schema.Number {
	out := []schema.Number{}

	if step > 0 {
		for v := start; v < stop; v += step {
			out = append(out, schema.Int(v))
		}

		return out
	}

	for v := start; v > stop; v += step {
		out = append(out, schema.Int(v))
	}

	return out
}

func expandFloat(start, stop, step float64) []schema.Number {
	count := int(math.Ceil((stop - start) / step))
	if count < 0 {
		count = 0
	}

	out := make([]schema.Number, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, schema.Float(start+float64(i)*step))
	}

	return out
}
