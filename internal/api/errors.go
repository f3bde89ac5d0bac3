package api

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the todo API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest returns true if the server rejected the payload.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400 || e.StatusCode == 422
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsAPIError checks if an error (or anything it wraps) is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrInvalidPayload is returned when a list response does not match the expected shape.
var ErrInvalidPayload = errors.New("invalid todo list payload")
