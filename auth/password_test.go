package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_StoredForm(t *testing.T) {
	stored := HashPassword("om-namo-venkatesaya")

	salt, digest, ok := strings.Cut(stored, "$")
	require.True(t, ok, "stored form must contain a separator")
	assert.Len(t, salt, 32, "128-bit salt, hex encoded")
	assert.Len(t, digest, 64, "SHA-256 digest, hex encoded")
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first := HashPassword("same-password")
	second := HashPassword("same-password")

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword(t *testing.T) {
	stored := HashPassword("correct horse battery staple")

	assert.True(t, VerifyPassword("correct horse battery staple", stored))
	assert.False(t, VerifyPassword("correct horse battery stapler", stored))
	assert.False(t, VerifyPassword("", stored))
}

func TestVerifyPassword_MalformedStoredForm(t *testing.T) {
	// A corrupt stored form verifies false, it never panics or errors.
	cases := []string{
		"",
		"no-separator",
		"$",
		"salt$",
		"$digest",
		"salt$not-hex!!",
	}
	for _, stored := range cases {
		assert.False(t, VerifyPassword("anything", stored), "stored=%q", stored)
	}
}
