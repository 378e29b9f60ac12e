package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripBearer(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"BEARER abc123", "abc123"},
		{"abc123", "abc123"},
		{"  abc123  ", "abc123"},
		{"Bearer ", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StripBearer(c.header), "header=%q", c.header)
	}
}

func TestNewSessionToken(t *testing.T) {
	first := NewSessionToken()
	second := NewSessionToken()

	assert.Len(t, first, 32, "128 bits, hex encoded")
	assert.NotEqual(t, first, second)
}
