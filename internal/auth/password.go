package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/scrypt"
)

// Derivation parameters for stored credentials: 64-byte scrypt keys with a
// per-record random 16-byte salt, both hex-encoded in the employee record.
const (
	scryptN       = 16384
	scryptR       = 8
	scryptP       = 1
	derivedKeyLen = 64
	saltBytes     = 16
)

// PasswordRecord holds freshly derived credential material.
type PasswordRecord struct {
	Salt string
	Hash string
}

// DerivePassword derives the hex-encoded scrypt hash of a password under the
// given salt. Deterministic: the same inputs always produce the same hash.
func DerivePassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, derivedKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// CreatePasswordRecord generates a fresh random salt and derives the hash.
func CreatePasswordRecord(password string) (PasswordRecord, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return PasswordRecord{}, err
	}
	salt := hex.EncodeToString(buf)
	hash, err := DerivePassword(password, salt)
	if err != nil {
		return PasswordRecord{}, err
	}
	return PasswordRecord{Salt: salt, Hash: hash}, nil
}

// VerifyPassword recomputes the hash and compares it to the stored one in
// constant time. Malformed or truncated stored hashes verify as false; this
// function never fails with an error.
func VerifyPassword(password, salt, expectedHash string) bool {
	computed, err := DerivePassword(password, salt)
	if err != nil {
		return false
	}
	a, err := hex.DecodeString(computed)
	if err != nil {
		return false
	}
	b, err := hex.DecodeString(expectedHash)
	if err != nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
