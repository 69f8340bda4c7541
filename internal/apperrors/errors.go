// Package apperrors defines the HTTP error taxonomy returned by services.
package apperrors

import (
	"errors"
	"net/http"
)

// HTTPError is a domain error carrying the status and the message sent to clients
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New creates an HTTPError, falling back to the default message for the status
func New(status int, message string) *HTTPError {
	if message == "" {
		message = defaultMessage(status)
	}
	return &HTTPError{Status: status, Message: message}
}

func BadRequest(message string) *HTTPError      { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *HTTPError    { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *HTTPError       { return New(http.StatusForbidden, message) }
func NotFound(message string) *HTTPError        { return New(http.StatusNotFound, message) }
func Conflict(message string) *HTTPError        { return New(http.StatusConflict, message) }
func TooManyRequests(message string) *HTTPError { return New(http.StatusTooManyRequests, message) }
func Internal(message string) *HTTPError        { return New(http.StatusInternalServerError, message) }

// As unwraps err into an HTTPError if one is present in its chain
func As(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// StatusOf returns the status carried by err, or 500 for unknown errors
func StatusOf(err error) int {
	if httpErr, ok := As(err); ok {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}

func defaultMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusUnauthorized:
		return "Not authorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusTooManyRequests:
		return "Too many requests"
	case http.StatusInternalServerError:
		return "Internal server error"
	default:
		return http.StatusText(status)
	}
}
