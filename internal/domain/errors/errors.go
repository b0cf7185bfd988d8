package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Portal error code, e.g. "A001"
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	code     Code
	details  string
}

// NewBaseError creates a new base error. The message comes from the code table.
func NewBaseError(httpCode int, code Code, details string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		code:     code,
		details:  details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return string(e.code) + ": " + e.details
	}

	return string(e.code) + ": " + e.Message()
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the portal error code
func (e *BaseError) ErrorCode() string {
	return string(e.code)
}

// Code returns the typed portal error code
func (e *BaseError) Code() Code {
	return e.code
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.code.Message()
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same code, so WithDetails copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.code == e.code
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		code:     e.code,
		details:  details,
	}
}

// Predefined error types
var (
	// Authentication
	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, CodeInvalidCredentials, "")
	ErrAccountLocked      = NewBaseError(http.StatusUnauthorized, CodeAccountLocked, "")
	ErrMfaExpired         = NewBaseError(http.StatusUnauthorized, CodeMfaExpired, "")
	ErrUnauthenticated    = NewBaseError(http.StatusUnauthorized, CodeUnauthenticated, "")

	// Form requests
	ErrInvalidInput = NewBaseError(http.StatusBadRequest, CodeInvalidInput, "")
	ErrFormExpired  = NewBaseError(http.StatusForbidden, CodeFormExpired, "")

	// Auth API
	ErrAuthServer = NewBaseError(http.StatusBadGateway, CodeAuthServer, "")

	// Portal
	ErrUnexpected = NewBaseError(http.StatusInternalServerError, CodeUnexpected, "")
	ErrForbidden  = NewBaseError(http.StatusForbidden, CodeForbidden, "")

	// Resource API
	ErrResourceAPI           = NewBaseError(http.StatusBadGateway, CodeResourceAPI, "")
	ErrResourceAlreadyExists = NewBaseError(http.StatusConflict, CodeResourceAlreadyExists, "")
	ErrResourceNotFound      = NewBaseError(http.StatusNotFound, CodeResourceNotFound, "")
)
