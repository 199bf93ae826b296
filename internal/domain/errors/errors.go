// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes. The delivery layer translates these at the request
// boundary; nothing below it writes responses.
package errors

import (
	"net/http"

	"pinboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Validation errors. The caller must resubmit.
	ErrUsernameEmpty = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_EMPTY",
		"username must not be empty",
		"",
	)

	// The five-character minimum is the source policy, kept deliberately weak.
	ErrSecretTooShort = NewBaseError(
		http.StatusBadRequest,
		"SECRET_TOO_SHORT",
		"secret must be at least 5 characters long",
		"",
	)

	ErrMessageEmpty = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_EMPTY",
		"message must not be empty",
		"",
	)

	// ErrUsernameTaken reports a username uniqueness conflict at registration.
	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"username already taken",
		"",
	)

	// ErrCredentialMismatch is returned for both an unknown username and a
	// wrong secret, so a caller cannot tell which field failed.
	ErrCredentialMismatch = NewBaseError(
		http.StatusNotFound,
		"CREDENTIAL_MISMATCH",
		"username or secret does not match",
		"",
	)

	// ErrUnauthorized rejects a protected request with a missing or invalid token.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"please log in",
		"",
	)

	// ErrCredentialLookup reports that the gate could not consult the store at
	// all, distinct from ErrUnauthorized so operators can tell infrastructure
	// trouble apart from bad credentials.
	ErrCredentialLookup = NewBaseError(
		http.StatusNotFound,
		"CREDENTIAL_LOOKUP_FAILED",
		"could not check credentials",
		"",
	)

	ErrIdentityCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"IDENTITY_CREATION_FAILED",
		"failed to create identity",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StoreExecuteError represents a storage execution failure, implementing the
// AppError interface. The wrapped cause is kept for logs only and never
// reaches the response body.
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a storage-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "store execution failed"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}
