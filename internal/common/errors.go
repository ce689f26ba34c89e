// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
)

// Application errors.
var (
	ErrNotTerminal   = errors.New("not a terminal")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError is an error whose message is meant for the person at the
// terminal. Err, when set, carries the underlying cause.
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError wraps err with a message for the user.
func NewUserError(message string, err error) error {
	return &UserError{Message: message, Err: err}
}

// IsUserError reports whether err wraps a UserError.
func IsUserError(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr)
}
