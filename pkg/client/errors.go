package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrUnauthorized indicates the request was rejected for missing or invalid
// credentials (HTTP 401/403). Re-authentication will not help until the
// configured credentials change.
var ErrUnauthorized = errors.New("unauthorized")

// NotFoundError indicates the requested path does not exist (HTTP 404).
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// BadRequestError indicates the server rejected the request as malformed
// (HTTP 400), with the server's message when it provided one.
type BadRequestError struct {
	Message string
}

// Error implements the error interface.
func (e *BadRequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bad request: %s", e.Message)
	}
	return "bad request"
}

// RateLimitError indicates the server throttled the request (HTTP 429).
// Retried automatically up to the configured limit.
type RateLimitError struct{}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return "rate limited"
}

// ServerError indicates a 5xx response. Retried automatically up to the
// configured limit.
type ServerError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error %d", e.StatusCode)
}

// APIError is the fallback for any other non-2xx status, carrying the
// server's message field when present.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// serverMessage extracts the API's message field from an error response body,
// or returns "" if the body is not in the expected shape.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// statusError maps a non-2xx response to the error taxonomy.
func statusError(statusCode int, path string, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return &NotFoundError{Path: path}
	case http.StatusBadRequest:
		return &BadRequestError{Message: serverMessage(body)}
	case http.StatusTooManyRequests:
		return &RateLimitError{}
	}
	if statusCode >= 500 {
		return &ServerError{StatusCode: statusCode, Message: serverMessage(body)}
	}
	return &APIError{StatusCode: statusCode, Message: serverMessage(body)}
}

// retryable reports whether a request that failed with err may succeed on a
// retry. Throttling, server-side failures, and transient connection errors
// qualify; 4xx responses, auth failures, and context cancellation never do.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rle *RateLimitError
	var srv *ServerError
	if errors.As(err, &rle) || errors.As(err, &srv) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
