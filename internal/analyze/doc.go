// Package analyze loads Go packages and extracts shapes from their struct
// declarations.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build
// shape.Shape values for every exported struct type, deriving mutability and
// optionality flags from `shape` struct tags, pointer fields, and
// `json:",omitempty"` options. Exported numeric constants are collected with
// their literal spelling taken straight from the declaring source.
package analyze
