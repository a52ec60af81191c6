// Package report renders classification results for the CLI.
//
// Key capabilities:
//   - Key-set reports for one shape (readonly/writable, optional/required,
//     func/non-func partitions plus the required sub-shape)
//   - Literal classification tables
//   - Raw spew dumps of the extracted model for debugging
package report
