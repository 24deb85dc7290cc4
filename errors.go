package zeptomail

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout indicates no response arrived within the request timeout.
	ErrTimeout = errors.New("zeptomail: request timed out")

	// ErrNetwork indicates a transport failure (DNS, connection, TLS, ...).
	ErrNetwork = errors.New("zeptomail: network error")

	// ErrAPI indicates the API answered with a non-2xx status.
	ErrAPI = errors.New("zeptomail: api error")

	// ErrEncodeFailed indicates the request payload could not be serialized.
	ErrEncodeFailed = errors.New("zeptomail: failed to encode payload")

	// ErrDecodeFailed indicates a successful response carried a body that is not JSON.
	ErrDecodeFailed = errors.New("zeptomail: failed to decode response")
)

// TimeoutError is returned when the request timer fires before a response arrives.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("zeptomail: request timed out after %dms", e.Timeout.Milliseconds())
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NetworkError is returned for transport failures other than the timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "zeptomail: network error: " + e.Message()
}

// Message returns the underlying failure's message.
func (e *NetworkError) Message() string {
	if e.Err == nil {
		return "unknown"
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNetwork.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	// Message is the "message" field of the error body, or the whole body
	// as compact JSON when that field is missing or empty.
	Message string

	// Code and RequestID come from the "error" object ZeptoMail puts in
	// its error responses. Empty when the body has no such object.
	Code      string
	RequestID string

	// Body is the raw response body.
	Body []byte

	// StatusCode is the HTTP status code.
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zeptomail: error %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}
