package printify

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an upstream 404 for a single product.
var ErrNotFound = errors.New("product not found upstream")

// StatusError captures non-2xx HTTP responses from the upstream catalog API.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s request failed: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: status %d: %s", e.Operation, e.StatusCode, e.Body)
}
