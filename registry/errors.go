package registry

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched by an *Error produced for a 404 response.
var ErrNotFound = errors.New("package not found")

// Error describes a failure reported by the registry or the HTTP transport.
// StatusCode is zero when no response was received.
type Error struct {
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Request failed"
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the registry answered 404.
func (e *Error) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// Is makes errors.Is(err, ErrNotFound) hold for 404 responses.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.NotFound()
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr, true
	}
	return nil, false
}
