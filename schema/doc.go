// Package schema provides the value vocabulary for combinatorial
// configuration fields.
//
// Key types:
//   - KindEnum: classification of a runtime configuration value
//   - Number: tagged numeric value preserving the int/float distinction
//   - Undefined: sentinel marking a field as explicitly unspecified
//
// The package-level guards (IsNumber, IsPrimitive, IsEnumerable,
// IsUndefined) are total: they classify any input and never panic.
package schema
