package apperror

import "net/http"

// AppError carries an HTTP status code alongside a user-facing message.
// The wrapped cause, if any, stays internal.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest is shorthand for a 400 error.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// NotFound is shorthand for a 404 error.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Conflict is shorthand for a 409 error.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}
