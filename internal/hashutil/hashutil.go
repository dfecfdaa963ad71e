package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON hashes the JSON encoding of v.
func HashJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Short truncates a hex digest for display.
func Short(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}
