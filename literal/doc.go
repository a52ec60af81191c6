// Package literal classifies numeric literal spellings.
//
// Classification is purely lexical over the canonical textual form of a
// literal: a leading "-" makes it negative, a "." makes it non-integer. The
// magnitude is never computed. The accepted grammar is an optional single
// leading "-", one or more ASCII digits, and optionally a single "." followed
// by one or more digits; exponents, a leading "+", grouping separators and
// non-decimal bases are rejected.
package literal
