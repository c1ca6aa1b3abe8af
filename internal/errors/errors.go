// Package errors provides custom error types for the agent API client.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/diogo/agentchat/internal/models"
)

// Sentinel errors for common cases
var (
	ErrEmptyTask       = errors.New("task cannot be empty")
	ErrInvalidResponse = errors.New("invalid response format")
)

// NetworkError represents a transport-level failure (e.g. the agent
// server is unreachable).
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error during %s at %s: %v", e.Op, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(op, endpoint string, err error) *NetworkError {
	return &NetworkError{Op: op, Endpoint: endpoint, Err: err}
}

// APIError represents a non-success HTTP response from the agent server.
// Detail carries the server-supplied error message when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Detail)
	}
	return fmt.Sprintf("API error [%d] at %s", e.StatusCode, e.Endpoint)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Detail:     detail,
	}
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsAPIError reports whether err is (or wraps) an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// GetHTTPStatus extracts the HTTP status code from an APIError,
// or 0 if err carries none.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetDetail extracts the server-supplied detail from an APIError,
// or "" if err carries none.
func GetDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// GetEndpoint extracts the endpoint from a structured error, or "".
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	return ""
}

// UserMessage collapses any call failure into the single string shown to
// the user: the server detail if present, otherwise the HTTP status
// description, otherwise a generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if detail := GetDetail(err); detail != "" {
		return detail
	}
	if status := GetHTTPStatus(err); status > 0 {
		if text := http.StatusText(status); text != "" {
			return fmt.Sprintf("%d %s", status, text)
		}
		return fmt.Sprintf("%d", status)
	}
	return models.GenericFailureMessage
}
