package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data (64 characters).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digest builds "<namespace>:<sha256 of the JSON-encoded parts>". Key option
// structs hold only numbers and strings, so encoding cannot fail.
func digest(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return namespace + ":" + Hash(data)
}
