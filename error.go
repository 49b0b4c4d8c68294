package sitesum

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EFETCH     = "fetch"
	EPARSE     = "parse"
	EAPI       = "api"
	EINVALID   = "invalid"
	ECONFLICT  = "conflict"
	ERATELIMIT = "rate_limit"
	EINTERNAL  = "internal"
)

// Error represents an application-specific error. Code is one of the
// constants above, Message is safe to show to the user, and Err optionally
// holds the underlying cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sitesum error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError attaches code to err. Errors that already carry an application
// code are returned unchanged so the first step to classify a failure wins.
func WrapError(code string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Code: code, Message: err.Error(), Err: err}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
