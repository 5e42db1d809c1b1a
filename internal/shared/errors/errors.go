package errors

import (
	"errors"
	"fmt"
)

// ErrorType is the category of an error. response maps each one to an HTTP status.
type ErrorType string

const (
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeConflict         ErrorType = "conflict"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeForbidden        ErrorType = "forbidden"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	ErrorTypeRateLimited      ErrorType = "rate_limited"
	// ErrorTypeExternal marks a failing dependency such as Postgres or Redis
	ErrorTypeExternal ErrorType = "external"
)

type AppError struct {
	Type    ErrorType
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

func newError(t ErrorType, message string, err error) error {
	return &AppError{Type: t, Message: message, Err: err}
}

func NotFoundf(format string, args ...any) error {
	return newError(ErrorTypeNotFound, fmt.Sprintf(format, args...), nil)
}

func Validation(message string) error {
	return newError(ErrorTypeValidation, message, nil)
}

func Validationf(format string, args ...any) error {
	return newError(ErrorTypeValidation, fmt.Sprintf(format, args...), nil)
}

// WrapValidation keeps err as the cause, typically a strconv parse failure.
func WrapValidation(message string, err error) error {
	return newError(ErrorTypeValidation, message, err)
}

func Conflictf(format string, args ...any) error {
	return newError(ErrorTypeConflict, fmt.Sprintf(format, args...), nil)
}

func WrapInternal(message string, err error) error {
	return newError(ErrorTypeInternal, message, err)
}

func Unauthorized(message string) error {
	return newError(ErrorTypeUnauthorized, message, nil)
}

// WrapUnauthorized keeps the token parse error for the log while the client sees message.
func WrapUnauthorized(message string, err error) error {
	return newError(ErrorTypeUnauthorized, message, err)
}

func Forbidden(message string) error {
	return newError(ErrorTypeForbidden, message, nil)
}

func MethodNotAllowed(method string) error {
	return newError(ErrorTypeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method), nil)
}

func RateLimited(message string) error {
	return newError(ErrorTypeRateLimited, message, nil)
}

func External(message string) error {
	return newError(ErrorTypeExternal, message, nil)
}

func WrapExternal(message string, err error) error {
	return newError(ErrorTypeExternal, message, err)
}

// GetType returns the type of the first AppError in err's chain, or internal.
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether err carries an AppError of type t.
func Is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
