package cloudflare

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when the API reports success but omits the
// payload a create or update is contractually owed. It signals a server
// contract violation, not a validation problem.
var ErrEmptyResult = errors.New("no result returned")

// TransportError wraps a failure of the HTTP call itself: connection
// refused, timeout, interrupted body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a response body that did not match the expected
// envelope shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is an envelope that reported success=false. Message is the
// first error entry's text; a failure with zero error entries keeps the
// empty string as-is so callers see exactly what the server said.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s", e.Message)
}
