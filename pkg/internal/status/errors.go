package status

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Standard error codes for the application
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeStorageFailure   = "STORAGE_FAILURE"
	CodeUpstreamDegraded = "UPSTREAM_DEGRADED"
)

type Error struct {
	Code    string
	Message string
	Origin  error
}

func (e *Error) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Origin
}

func New(code string, message string, origin error) *Error {
	return &Error{Code: code, Message: message, Origin: origin}
}

func InvalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func Storage(message string, origin error) *Error {
	return &Error{Code: CodeStorageFailure, Message: message, Origin: origin}
}

func Upstream(message string, origin error) *Error {
	return &Error{Code: CodeUpstreamDegraded, Message: message, Origin: origin}
}

func IsCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// HTTPStatus maps an error to the status code its API response carries.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return fiber.StatusInternalServerError
	}
	switch e.Code {
	case CodeInvalidInput:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Translate shortens the handler-side boilerplate of surfacing a service
// error as a fiber error.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	return fiber.NewError(HTTPStatus(err), err.Error())
}
