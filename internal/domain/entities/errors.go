package entities

import (
	"errors"
	"fmt"
)

// ErrorCode is the symbolic code attached to a RelationshipError. Codes are
// what the admin redirect reports in did_action, so they double as the keys
// the notice renderer understands.
type ErrorCode string

const (
	ErrNotFound      ErrorCode = "not_found"
	ErrCreateFailed  ErrorCode = "create_failed"
	ErrUpdateFailed  ErrorCode = "update_failed"
	ErrDeleteFailed  ErrorCode = "delete_failed"
	ErrInvalidStatus ErrorCode = "invalid_status"
	ErrUnauthorized  ErrorCode = "unauthorized"
)

// RelationshipError is a typed failure from a relationship operation.
// Callers branch on Code, never on the dynamic type of a wrapped error.
type RelationshipError struct {
	Code ErrorCode
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *RelationshipError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause, if any.
func (e *RelationshipError) Unwrap() error {
	return e.Err
}

// NewError creates a RelationshipError with the given code and message.
func NewError(code ErrorCode, msg string) *RelationshipError {
	return &RelationshipError{Code: code, Msg: msg}
}

// WrapError creates a RelationshipError wrapping an underlying cause.
func WrapError(code ErrorCode, msg string, err error) *RelationshipError {
	return &RelationshipError{Code: code, Msg: msg, Err: err}
}

// CodeOf extracts the error code from err. Errors that are not
// RelationshipErrors map to the fallback code supplied by the caller.
func CodeOf(err error, fallback ErrorCode) ErrorCode {
	var relErr *RelationshipError
	if errors.As(err, &relErr) {
		return relErr.Code
	}
	return fallback
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var relErr *RelationshipError
	return errors.As(err, &relErr) && relErr.Code == code
}
