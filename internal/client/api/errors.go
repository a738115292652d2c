package api

import (
	"fmt"
	"net/http"

	"tastebook/internal/common"
)

// ValidationError reports a local, pre-network validation failure. No
// request is issued when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestError is any non-2xx backend response. Message is taken from the
// response body when the backend provided one, with a generic fallback.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes to sentinel errors so callers can use
// errors.Is without inspecting codes.
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return common.ErrUnavailable
	default:
		return nil
	}
}

// NetworkError is a transport failure: the request never produced an HTTP
// response (connection refused, timeout, DNS failure).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError is a 2xx response whose body does not match the expected
// shape. It keeps malformed backend payloads from leaking zero values into
// screen state.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed response for %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
