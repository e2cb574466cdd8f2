package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// legacyHashLen is the length of a hex-encoded SHA-256 digest. Accounts
// created before bcrypt was adopted store their password this way.
const legacyHashLen = sha256.Size * 2

// HashPassword generates a bcrypt hash of the password's SHA-256 hex digest,
// so passwords of any length are accepted.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(LegacySHA256(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash, which is
// either a bcrypt hash or a legacy unsalted SHA-256 hex digest.
func CheckPassword(password, hashed string) bool {
	if IsLegacyHash(hashed) {
		sum := LegacySHA256(password)
		return subtle.ConstantTimeCompare([]byte(sum), []byte(strings.ToLower(hashed))) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(LegacySHA256(password))) == nil
}

// LegacySHA256 returns the unsalted hex SHA-256 digest of password.
func LegacySHA256(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsLegacyHash reports whether hashed looks like a hex SHA-256 digest.
func IsLegacyHash(hashed string) bool {
	if len(hashed) != legacyHashLen {
		return false
	}
	_, err := hex.DecodeString(hashed)
	return err == nil
}
