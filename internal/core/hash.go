package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns a short content hash used in the build manifest.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:8])
}
