// Package hashutil derives stable identifiers for cache rows and feed items.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const keySeparator = "|"

// SHA256Hex hashes the trimmed input and returns lowercase hex.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(input)))
	return hex.EncodeToString(sum[:])
}

// Key hashes parts joined by "|". Each part is trimmed, so padding around a
// language code or message body never splits one cache entry into two.
func Key(parts ...string) string {
	trimmed := make([]string, len(parts))
	for i, p := range parts {
		trimmed[i] = strings.TrimSpace(p)
	}
	return SHA256Hex(strings.Join(trimmed, keySeparator))
}
