package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// RenderKey builds the cache key for a rendered artifact from its DOT
// source and output format. Identical layouts produce identical DOT, so
// the key is stable across runs.
func RenderKey(format string, dot []byte) string {
	return fmt.Sprintf("render:%s:%s", format, Hash(dot))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
