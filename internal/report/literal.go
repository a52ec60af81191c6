package report

import (
	"fmt"
	"strings"

	"shapecheck/literal"
)

// LiteralRow is the classification of one literal spelling.
type LiteralRow struct {
	Spelling string `json:"spelling"`
	Integer  bool   `json:"integer"`
	Positive bool   `json:"positive"`
	Negative bool   `json:"negative"`
	Class    string `json:"class"`
}

// ForNumbers classifies a batch of validated literal spellings.
func ForNumbers(nums []literal.Number) []LiteralRow {
	rows := make([]LiteralRow, 0, len(nums))
	for _, n := range nums {
		rows = append(rows, LiteralRow{
			Spelling: n.String(),
			Integer:  n.IsInteger(),
			Positive: n.IsPositive(),
			Negative: n.IsNegative(),
			Class:    n.Class().String(),
		})
	}

	return rows
}

// LiteralText renders literal rows as stable, line-oriented text.
func LiteralText(rows []LiteralRow) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s -> %s\n", r.Spelling, r.Class)
	}

	return b.String()
}
