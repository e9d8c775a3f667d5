package dearrow

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by TransportError when the server answers
// with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// TransportError wraps any failure of the branding round trip: connection,
// timeout, HTTP status or response decoding.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending branding request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
