package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateHexID returns prefix-<length lowercase hex chars> drawn from crypto/rand.
func GenerateHexID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid id length %d", length)
	}

	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes)[:length]), nil
}
