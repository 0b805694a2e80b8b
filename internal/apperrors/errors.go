package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates that the resource is in a state that does not permit
// the requested transition (e.g. approving an already-approved record).
var ErrConflict = errors.New("conflicting state")

// ErrInvalidDiscount indicates that a discounted price fell below the
// service's minimum price floor.
var ErrInvalidDiscount = errors.New("invalid discount")

// ErrRefreshTokenExpired indicates that the stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError wraps an underlying error with an HTTP-ish status code and message.
// The repository layer uses it for unexpected failures; expected, recoverable
// conditions use the sentinel errors above so callers can branch with errors.Is.
type AppError struct {
	Code    int
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

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
