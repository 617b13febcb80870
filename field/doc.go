// Package field provides guards, normalization, and expansion for sweep
// field descriptors.
//
// Key operations:
//   - IsRangeField / IsEnumField: total structural guards
//   - Normalize: canonical (start, stop, step) form of a range descriptor
//   - ToList: the ordered sequence a range descriptor denotes
//
// Guards only ever return a boolean. Normalize and ToList fail with
// InvalidRangeFieldError when the input breaks the range field contract;
// callers that want to avoid the error path validate with IsRangeField
// first.
package field
