package util

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a URL-safe hex string over n random bytes. Callers pick the
// width they need: short IDs for request correlation and stream entries,
// wider ones for object storage keys that must never collide.
func NewID(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
