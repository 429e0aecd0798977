package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error types
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("operation conflicts with current state")
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
		Err:     ErrNotFound,
	}
}

// APIError is a non-2xx answer from the profiles REST backend.
// Message is shown to users verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

// NewAPIError builds an APIError, falling back to "Error: <status> <statusText>"
// when the backend did not send a message.
func NewAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("Error: %d %s", statusCode, http.StatusText(statusCode))
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrNotFound) match a 404 from the backend
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
