// Package digest provides the SHA-256 hex digest used to pseudonymize
// usernames and to verify passwords. The stored credential map is keyed by
// these digests, so the algorithm is fixed by the data format.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sum returns the lowercase hex SHA-256 digest of s.
func Sum(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// UserKey returns the digest used as a credential store key. Usernames are
// case-folded before hashing so lookup is case-insensitive; passwords go
// through Sum directly and stay case-sensitive.
func UserKey(username string) string {
	return Sum(strings.ToLower(username))
}
