package upstream

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport-level failures: connection refused,
// DNS, timeout. Distinct from APIError, which means the upstream
// answered with a non-2xx status.
var ErrUnavailable = errors.New("upstream unavailable")

// APIError is a non-2xx response from the upstream, carrying whatever
// the error body said if it was parseable.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}

// errorBody is the envelope shape the upstream uses for failures.
type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
