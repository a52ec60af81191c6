package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapecheck/internal/report"
	"shapecheck/literal"
)

func TestLiteralCommand_Text(t *testing.T) {
	// "--" keeps cobra from reading "-5" as a flag.
	out, _, err := execute(t, "literal", "--", "5", "-5", "5.2", "-5.2")
	require.NoError(t, err)

	want := "5 -> integer+positive\n" +
		"-5 -> integer+negative\n" +
		"5.2 -> positive\n" +
		"-5.2 -> negative\n"
	assert.Equal(t, want, out)
}

func TestLiteralCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "literal", "0")
	require.NoError(t, err)

	var rows []report.LiteralRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "integer+positive", rows[0].Class)
}

func TestLiteralCommand_RejectsMalformed(t *testing.T) {
	out, _, err := execute(t, "literal", "--", "5", "5e3")
	require.Error(t, err)
	assert.ErrorIs(t, err, literal.ErrNotNumeric)
	assert.Empty(t, out, "no partial result on malformed input")
}
