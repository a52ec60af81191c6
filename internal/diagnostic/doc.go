// Package diagnostic provides structured errors, warnings, and notes produced
// while extracting and classifying shapes.
//
// Key capabilities:
//   - Malformed-input errors (absent keys, non-literal constants, bad manifest
//     entries) with shape/member coordinates
//   - Skipped-declaration notes from package loading
//   - Aggregation into a single error for CLI exit paths
package diagnostic
