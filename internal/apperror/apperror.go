// Package apperror carries an HTTP status and a user-facing message alongside an error.
package apperror

import (
	"errors"
	"net/http"
)

const DefaultMessage = "Something went wrong"

type Error struct {
	Status  int
	Message string
	Err     error
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Wrap(err error, status int, message string) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func BadRequest(err error) *Error {
	return Wrap(err, http.StatusBadRequest, err.Error())
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	return e.Status
}

// Statuser is implemented by errors that know which HTTP status they map to.
type Statuser interface {
	StatusCode() int
}

// Resolve returns the status and message to report for err. Errors that carry
// neither fall back to 500 and DefaultMessage.
func Resolve(err error) (int, string) {
	status := http.StatusInternalServerError
	message := DefaultMessage

	var s Statuser
	if errors.As(err, &s) && s.StatusCode() != 0 {
		status = s.StatusCode()
		if err.Error() != "" {
			message = err.Error()
		}
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	return status, message
}
