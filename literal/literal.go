package literal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotNumeric = errors.New("not a numeric literal spelling")

// Number is a validated canonical spelling of exactly one numeric literal.
//
// All predicates are lexical: they inspect the spelling, never the magnitude.
// In particular "0" carries no sign and therefore classifies as positive (and
// as a positive integer), while "-0" classifies as negative.
type Number struct {
	text string
}

// Parse validates text against the literal grammar and returns its Number.
// The grammar is: optional single leading "-", one or more digits, optionally
// a single "." followed by one or more digits.
func Parse(text string) (Number, error) {
	rest := strings.TrimPrefix(text, "-")
	if rest == "" {
		return Number{}, notNumeric(text)
	}

	intPart, fracPart, hasDot := strings.Cut(rest, ".")
	if !allDigits(intPart) {
		return Number{}, notNumeric(text)
	}

	if hasDot && !allDigits(fracPart) {
		return Number{}, notNumeric(text)
	}

	return Number{text: text}, nil
}

func notNumeric(text string) error {
	return fmt.Errorf("%w: %q", ErrNotNumeric, text)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// String returns the canonical spelling.
func (n Number) String() string {
	return n.text
}

// IsInteger reports that the spelling contains no fractional separator.
func (n Number) IsInteger() bool {
	return !strings.Contains(n.text, ".")
}

// IsNegative reports that the spelling begins with "-".
func (n Number) IsNegative() bool {
	return strings.HasPrefix(n.text, "-")
}

// IsPositive reports that the spelling carries no leading sign character.
func (n Number) IsPositive() bool {
	return !strings.HasPrefix(n.text, "-")
}

// IsPositiveInteger reports IsPositive and IsInteger together.
func (n Number) IsPositiveInteger() bool {
	return n.IsPositive() && n.IsInteger()
}

// IsNegativeInteger reports IsNegative and IsInteger together.
func (n Number) IsNegativeInteger() bool {
	return n.IsNegative() && n.IsInteger()
}

// Class returns the full flag set for the spelling.
func (n Number) Class() ClassEnum {
	c := ClassNone
	if n.IsInteger() {
		c |= ClassInteger
	}

	if n.IsPositive() {
		c |= ClassPositive
	}

	if n.IsNegative() {
		c |= ClassNegative
	}

	return c
}
