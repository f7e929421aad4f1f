package errors

import (
	stdErrors "errors"
	"fmt"
)

// RequestError is the single failure class surfaced to users: a catalog
// request that did not produce a usable response. Status is zero when the
// request failed below HTTP (DNS, connection reset, cancelled context).
type RequestError struct {
	Op     string
	Status int
	Err    error
}

// Error returns the text of the underlying failure so it can be shown as-is.
func (e *RequestError) Error() string {
	if e.Err == nil {
		if e.Status != 0 {
			return fmt.Sprintf("unexpected status %d", e.Status)
		}
		return "request failed"
	}
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError wraps err as a RequestError for the named operation.
func NewRequestError(op string, status int, err error) *RequestError {
	return &RequestError{Op: op, Status: status, Err: err}
}

// IsRequestError reports whether err is a RequestError (even when wrapped).
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return stdErrors.As(err, &reqErr)
}
