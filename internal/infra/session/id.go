package session

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	idBytes       = 16
	maxIDAttempts = 3

	opCreate = "create"
	opLookup = "lookup"

	resultOK      = "ok"
	resultMiss    = "miss"
	resultExpired = "expired"
	resultError   = "error"
)

// NewID returns 128 random bits, hex encoded.
func NewID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
