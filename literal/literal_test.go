package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationTable(t *testing.T) {
	cases := []struct {
		text     string
		integer  bool
		positive bool
		negative bool
	}{
		{"5", true, true, false},
		{"-5", true, false, true},
		{"5.2", false, true, false},
		{"-5.2", false, false, true},
		{"42", true, true, false},
		{"0.0", false, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			n, err := Parse(tc.text)
			require.NoError(t, err)

			assert.Equal(t, tc.integer, n.IsInteger())
			assert.Equal(t, tc.positive, n.IsPositive())
			assert.Equal(t, tc.negative, n.IsNegative())
			assert.Equal(t, tc.positive && tc.integer, n.IsPositiveInteger())
			assert.Equal(t, tc.negative && tc.integer, n.IsNegativeInteger())
		})
	}
}

func TestZeroPolicy(t *testing.T) {
	// "0" carries no sign character, so it classifies as positive; "-0"
	// carries one, so it classifies as negative. The two tests stay
	// independent.
	zero, err := Parse("0")
	require.NoError(t, err)
	assert.True(t, zero.IsPositive())
	assert.True(t, zero.IsPositiveInteger())
	assert.False(t, zero.IsNegative())

	negZero, err := Parse("-0")
	require.NoError(t, err)
	assert.True(t, negZero.IsNegative())
	assert.True(t, negZero.IsNegativeInteger())
	assert.False(t, negZero.IsPositive())
}

func TestSignAndIntegralityAreExclusive(t *testing.T) {
	for _, text := range []string{"5", "-5", "5.2", "-5.2", "0", "-0"} {
		n, err := Parse(text)
		require.NoError(t, err)

		assert.NotEqual(t, n.IsPositive(), n.IsNegative(), "spelling %s", text)
	}
}

func TestParse_RejectsNonLiteralSpellings(t *testing.T) {
	for _, text := range []string{
		"", "-", ".", "5.", ".5", "-.5", "+5", "5e3", "0x10", "1_000",
		"1.2.3", "--5", "five", "5 ", " 5", "5,2",
	} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrNotNumeric, "spelling %q", text)
	}
}

func TestClass(t *testing.T) {
	cases := map[string]ClassEnum{
		"5":    ClassPositiveInteger,
		"-5":   ClassNegativeInteger,
		"5.2":  ClassPositive,
		"-5.2": ClassNegative,
	}

	for text, want := range cases {
		n, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, want, n.Class(), "spelling %s", text)
	}
}

func TestClassEnum_String(t *testing.T) {
	assert.Equal(t, "integer+positive", ClassPositiveInteger.String())
	assert.Equal(t, "integer+negative", ClassNegativeInteger.String())
	assert.Equal(t, "positive", ClassPositive.String())
	assert.Equal(t, "none", ClassNone.String())
}
