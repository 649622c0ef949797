package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	// counter for generating sequential IDs
	counter uint64
)

// sessionID identifies one process run; every request id carries it as a prefix
// so all commands of a session can be grepped together.
var sessionID = uuid.NewString()[:8]

// SessionID returns the id shared by all request ids of this process.
func SessionID() string {
	return sessionID
}

// GenerateRequestID generates a unique request ID
// Format: session-counter
// Example: 1f3a9c2e-000042
func GenerateRequestID() string {
	count := atomic.AddUint64(&counter, 1)
	return fmt.Sprintf("%s-%06d", sessionID, count)
}
