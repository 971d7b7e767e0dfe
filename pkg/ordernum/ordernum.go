// Package ordernum generates human-facing order references of the form
// ORD-XXXXXX. The suffix is random, so uniqueness is enforced by the
// database constraint; callers retry on conflict.
package ordernum

import (
	"crypto/rand"
	"fmt"
)

const (
	prefix    = "ORD-"
	suffixLen = 6
	charset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New returns a fresh order number, e.g. "ORD-7K2Q9X".
func New() (string, error) {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("ordernum: %w", err)
	}
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return prefix + string(buf), nil
}
