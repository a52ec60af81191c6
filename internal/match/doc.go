// Package match provides identifier normalization and closest-candidate
// lookup, used to attach "did you mean" hints to unknown-name diagnostics.
package match
