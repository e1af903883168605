// internal/client/remote/errors.go
package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks timeouts and connectivity failures. Callers surface
	// a retry affordance.
	ErrNetwork = errors.New("network error")

	// ErrNotFound is returned when the backend answers 404 for an id.
	ErrNotFound = errors.New("not found")
)

// ServerError is any other non-2xx response. Retryable, surfaced as a
// message.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}
