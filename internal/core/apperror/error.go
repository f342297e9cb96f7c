// Package apperror provides structured error handling following RFC 7807 Problem Details.
// All errors crossing the metadata and transport boundaries use AppError.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"

	// Validation errors (400)
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidInput = "INVALID_INPUT"

	// Metadata errors
	CodeUnknownEntityType = "UNKNOWN_ENTITY_TYPE"
	CodeNotCreatable      = "NOT_CREATABLE"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeDuplicate = "DUPLICATE_ENTRY"

	// Payload too large (413)
	CodeTooLarge = "PAYLOAD_TOO_LARGE"
)

// AppError is the standard error type for the service.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (entity type, key, id...)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidInput creates an input error bound to a single field (400)
func NewInvalidInput(field, message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// NewUnknownEntityType is returned when a lookup names a type the registry
// does not describe. It signals a caller bug (typo'd type key), never a
// missing object.
func NewUnknownEntityType(entityType string) *AppError {
	return &AppError{
		Code:       CodeUnknownEntityType,
		Message:    fmt.Sprintf("unknown entity type %q", entityType),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"type": entityType},
	}
}

// NewNotCreatable is returned when a type has no initializer.
func NewNotCreatable(entityType string) *AppError {
	return &AppError{
		Code:       CodeNotCreatable,
		Message:    fmt.Sprintf("entity type %q cannot be created", entityType),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"type": entityType},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewDuplicate creates a duplicate entry error (409)
func NewDuplicate(entity, field, value string) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Message:    fmt.Sprintf("%s with this %s already exists", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// NewTooLarge creates a payload size error (413)
func NewTooLarge(limit int64) *AppError {
	return &AppError{
		Code:       CodeTooLarge,
		Message:    "Request body too large",
		HTTPStatus: http.StatusRequestEntityTooLarge,
		Details:    map[string]any{"limit_bytes": limit},
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsUnknownEntityType checks if error is CodeUnknownEntityType
func IsUnknownEntityType(err error) bool {
	return hasCode(err, CodeUnknownEntityType)
}

// IsNotCreatable checks if error is CodeNotCreatable
func IsNotCreatable(err error) bool {
	return hasCode(err, CodeNotCreatable)
}

func hasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
