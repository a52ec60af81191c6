// Package catalog holds annotated fixture types consumed by the analyze and
// CLI tests.
package catalog

// Account exercises every member category: a read-only key, an optional key,
// plain writable keys and func-valued keys.
type Account struct {
	ID       string  `shape:"readonly" json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Balance  float64 `json:"balance"`

	Refresh func() error      `shape:"readonly" json:"refresh"`
	Notify  *func(msg string) `json:"notify,omitempty"`

	internal int // unexported, never part of the shape
}

// Ledger has only required writable members.
type Ledger struct {
	Owner   string         `json:"owner"`
	Entries map[string]int `json:"entries"`
}

// Numeric literal fixtures for const extraction.
const (
	MaxRetries  = 5
	FloorAdjust = -1.5
	DefaultRate = 0.25
	ZeroPoint   = 0
	Offset      = -5

	// Mask is spelled in hex, outside the literal grammar.
	Mask = 0x10
)
