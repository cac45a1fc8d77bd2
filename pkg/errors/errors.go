// Package errors provides structured error handling for the catalog service.
// Errors carry a stable code that the HTTP boundary maps to a wire status.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	// Client errors (4xx)
	CodeInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	CodeInvalidParameters ErrorCode = "INVALID_PARAMETERS"
	CodeRecipeNotFound    ErrorCode = "RECIPE_NOT_FOUND"

	// CodeRecipeNotPublished is internally a 403 so trusted callers and logs
	// can tell it apart from a missing row. The outward boundary presents it
	// as the identical not-found response; see the HTTP handlers.
	CodeRecipeNotPublished ErrorCode = "RECIPE_NOT_PUBLISHED"

	// Server errors (5xx)
	CodeInternal ErrorCode = "INTERNAL_SERVER_ERROR"
)

// AppError represents an application error with structured information
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeInvalidIdentifier, CodeInvalidParameters:
		return http.StatusBadRequest
	case CodeRecipeNotFound:
		return http.StatusNotFound
	case CodeRecipeNotPublished:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WithDetail adds a detail entry to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidIdentifierError reports a malformed recipe identifier. The
// message stays generic so the raw input is never echoed back.
func NewInvalidIdentifierError() *AppError {
	return NewAppError(CodeInvalidIdentifier, "invalid id")
}

// NewInvalidParametersError reports caller-correctable input. This is the
// one error that intentionally surfaces which field was at fault.
func NewInvalidParametersError(field, message string) *AppError {
	return NewAppError(CodeInvalidParameters, "invalid parameters").
		WithDetail(field, message)
}

// NewRecipeNotFoundError reports a missing recipe row
func NewRecipeNotFoundError() *AppError {
	return NewAppError(CodeRecipeNotFound, "recipe not found")
}

// NewRecipeNotPublishedError reports an existing but unpublished recipe
func NewRecipeNotPublishedError() *AppError {
	return NewAppError(CodeRecipeNotPublished, "recipe not published")
}

// NewInternalError creates a generic internal error with no detail leaked
func NewInternalError() *AppError {
	return NewAppError(CodeInternal, "an unexpected error occurred")
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			RequestID: requestID,
			Timestamp: fmt.Sprintf("%d", time.Now().Unix()),
		},
	}
}
