package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var (
	// Counter for sequential fallback IDs
	idCounter uint64
)

// GenerateID generates a unique timestamp-based ID. Used as a fallback
// when the random source is unavailable.
func GenerateID() string {
	count := atomic.AddUint64(&idCounter, 1)
	return fmt.Sprintf("%x-%x", time.Now().UnixNano(), count)
}

// GenerateRequestID generates a request ID (8 bytes hex-encoded) used to
// correlate diagnostic log lines for a single optimize call.
func GenerateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return GenerateID()
	}
	return hex.EncodeToString(b)
}
