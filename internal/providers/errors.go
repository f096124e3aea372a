package providers

import (
	"errors"
	"fmt"
)

// StatusError captures a non-2xx response from an upstream API.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// DecodeError captures a response body that was not valid JSON.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid JSON response: %v", e.Provider, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var dErr *DecodeError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}
