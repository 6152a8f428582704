package api

import "fmt"

// BackendError represents an error reported by the Arena backend:
// a non-success HTTP status with an optional message in the body.
type BackendError struct {
	// Message contains message from backend.
	Message string `json:"message"`
	// Code contains HTTP status code.
	Code int `json:"-"`
}

// Error returns response error message.
func (e *BackendError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return e.Message
}

// StatusCode returns HTTP status code of response.
func (e *BackendError) StatusCode() int {
	return e.Code
}

// TransportError represents a request that never produced a response:
// connection failure, DNS error or client-side timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to reach backend: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a successful response with a malformed body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
