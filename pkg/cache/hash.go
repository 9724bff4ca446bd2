package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the full hex SHA-256 digest of data. Circuit and style
// fingerprints use it directly, so identical inputs always land on the
// same artifact key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey derives a namespaced key from its components. Components are
// NUL-joined before hashing so ("ab","c") and ("a","bc") never collide.
func hashKey(prefix string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
