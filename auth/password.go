package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"matha/utils"

	"golang.org/x/crypto/pbkdf2"
)

// Deliberate cost factor, change only here.
const pbkdf2Iterations = 100000

// HashPassword derives a salted digest in "salt$hexdigest" form. The salt is
// 128-bit random hex, fresh per call.
func HashPassword(password string) string {
	salt := utils.RandomHex(16)
	dk := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, sha256.Size, sha256.New)
	return salt + "$" + hex.EncodeToString(dk)
}

// VerifyPassword recomputes the digest with the stored salt. A malformed
// stored form verifies false, it is never an error.
func VerifyPassword(password, stored string) bool {
	salt, hexhash, ok := strings.Cut(stored, "$")
	if !ok || salt == "" || hexhash == "" {
		return false
	}
	expected, err := hex.DecodeString(hexhash)
	if err != nil {
		return false
	}
	dk := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, sha256.Size, sha256.New)
	return hmac.Equal(dk, expected)
}
