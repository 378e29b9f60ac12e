package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-03")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDate_TrimsWhitespace(t *testing.T) {
	d, err := ParseDate("  2024-01-03 ")

	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", FormatDate(d))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "03-01-2024", "2024/01/03", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input=%q", s)
	}
}

func TestRandomHex(t *testing.T) {
	first := RandomHex(16)
	second := RandomHex(16)

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}
