package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response the server explained with a message
// payload. When the status also has a sentinel meaning (401, 404), the
// error wraps it, so errors.Is keeps working while the message survives.
type APIError struct {
	Status  int
	Message string

	err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}
