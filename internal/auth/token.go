package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const tokenBytes = 32

// NewSessionToken returns a cryptographically random hex token. The token
// doubles as the session's storage key, so it must be unguessable.
func NewSessionToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
