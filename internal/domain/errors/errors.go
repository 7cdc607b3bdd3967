// Package errors defines the application error taxonomy. Every failure path
// surfaces one of these, so the HTTP layer can always map an error to a
// {status, message} payload instead of letting a bare error bubble up.
package errors

import (
	"net/http"

	"supergames/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Validation errors. The messages are part of the API contract and mirror the
// wording clients already depend on.
var (
	ErrFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"FIELDS_REQUIRED",
		"All fields are required",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid Email",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"Invalid Password",
	)

	ErrInvalidName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NAME",
		"First./Lastname 2 characters minimum",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Password and Password confirmation do not match",
	)
)

// Authentication and lookup errors.
var (
	// ErrEmailExists keeps the observed 401 mapping; 409 would be the
	// conventional code for a duplicate.
	ErrEmailExists = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_EXISTS",
		"This email already exists",
	)

	// ErrCredentials deliberately conflates "no such email" with "wrong
	// password" so the response never discloses which one failed.
	ErrCredentials = NewBaseError(
		http.StatusNotFound,
		"INVALID_CREDENTIALS",
		"User does not exist or Incorrect Credentials",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid or expired token",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)
)

// Game ownership errors.
var (
	ErrGameExists = NewBaseError(
		http.StatusBadRequest,
		"GAME_EXISTS",
		"Game exists",
	)

	ErrGameNotFound = NewBaseError(
		http.StatusNotFound,
		"GAME_NOT_FOUND",
		"Game not found",
	)
)

// Internal errors.
var (
	// ErrRegistrationLost covers the invariant violation where a user was
	// persisted but the immediate credential re-read came back empty.
	ErrRegistrationLost = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_LOST",
		"User could not be verified after registration",
	)

	ErrStorage = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILURE",
		"Unexpected storage error",
	)
)

// NewStorageError wraps an unexpected storage fault with context while keeping
// the 500 mapping.
func NewStorageError(err error, message string) error {
	return errors.Wrap(errors.Join(ErrStorage, err), message)
}
