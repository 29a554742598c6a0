package userservice

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for 404 responses and for payloads that carry
	// no usable entity (an invalid session, an unknown role id).
	ErrNotFound = errors.New("user service: not found")

	// ErrMalformedResponse is returned when a success response lacks a field
	// the caller depends on.
	ErrMalformedResponse = errors.New("user service: malformed response")
)

// UpstreamError is a non-success status, or a success status whose body
// could not be decoded.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("user service %s: status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("user service %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// TransportError is a failure to complete the HTTP exchange: connection
// refused, DNS failure, timeout or cancellation.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("user service %s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// outcome labels an error for call metrics.
func outcome(err error) string {
	var (
		upstream  *UpstreamError
		transport *TransportError
	)
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.As(err, &transport):
		return "transport_error"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.As(err, &upstream):
		return "upstream_error"
	default:
		return "error"
	}
}
