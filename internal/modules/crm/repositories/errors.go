package repositories

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable means the backing connection was never established.
// Diagnostic endpoints report this as a degraded status; mutating
// operations surface it as a service error.
var ErrStoreUnavailable = errors.New("document store unavailable")

// maxErrLen bounds how much of an underlying store message is propagated.
const maxErrLen = 120

// StoreWriteError wraps a write-time failure with a truncated message.
type StoreWriteError struct {
	Collection string
	Message    string
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write to %q failed: %s", e.Collection, e.Message)
}

// StoreReadError wraps a read-time failure with a truncated message.
type StoreReadError struct {
	Collection string
	Message    string
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("read from %q failed: %s", e.Collection, e.Message)
}

// truncate cuts on a rune boundary so multibyte driver messages stay
// valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
