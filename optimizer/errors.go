package optimizer

import "fmt"

// TransportError reports a failed exchange with the route optimization
// service: unreachable network, timeout, or a non-success status.
// StatusCode is zero when no HTTP response was received.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("route service error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("route service error: %s", e.Message)
}
