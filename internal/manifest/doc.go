// Package manifest loads shape declarations from YAML files.
//
// A manifest lets callers declare shapes (member keys, value types,
// mutability and optionality flags) without pointing the loader at Go
// source. Member type spellings resolve against a fixed universe of basic
// types, "func()" and pointer forms.
package manifest
