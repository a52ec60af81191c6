package literal

import "strings"

// ClassEnum is a bit-flag set of the lexical classes a numeric spelling
// belongs to.
type ClassEnum int

const (
	ClassInteger  ClassEnum = 1 << iota // no fractional separator
	ClassPositive                       // no leading sign character
	ClassNegative                       // leading "-"

	ClassPositiveInteger = ClassPositive | ClassInteger
	ClassNegativeInteger = ClassNegative | ClassInteger

	ClassNone ClassEnum = 0
)

// Has reports whether every flag in the given set is present.
func (c ClassEnum) Has(flags ClassEnum) bool {
	return c&flags == flags
}

// String returns a stable "+"-joined list of the set flags.
func (c ClassEnum) String() string {
	if c == ClassNone {
		return "none"
	}

	var parts []string
	if c.Has(ClassInteger) {
		parts = append(parts, "integer")
	}

	if c.Has(ClassPositive) {
		parts = append(parts, "positive")
	}

	if c.Has(ClassNegative) {
		parts = append(parts, "negative")
	}

	return strings.Join(parts, "+")
}
