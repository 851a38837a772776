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

// ErrInvalidState indicates the operation is not allowed for the current
// state of the resource (wrong account kind, duplicate monthly accrual, ...).
var ErrInvalidState = errors.New("invalid state")

// AppError wraps a lower-level failure (usually persistence) with a status
// code and a message safe to log. The wrapped error is preserved for
// errors.Is/As checks.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error that satisfies errors.Is(err, ErrValidation).
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
