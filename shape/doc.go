// Package shape models record shapes and classifies their members.
//
// A Shape maps member keys to (value type, mutability flag, optionality flag).
// Value types are go/types.Type, so assignability questions are answered by the
// Go type system itself.
//
// Key capabilities:
//   - Shape construction, slicing (Pick) and derived projections
//   - Exact equality between shapes (Equal), stricter than assignability
//   - Per-key classifiers: readonly/writable, optional/required, func-valued,
//     category matching
//   - Key-set extractors that partition a shape's keys per category
package shape
