package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyLength is the length of every cache key in characters.
const KeyLength = sha256.Size * 2

// Key returns the cache key for url: the lowercase hex SHA-256 digest of the
// URL string. Two different URLs colliding is accepted as an inherent risk.
func Key(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])
}
