package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error carries the HTTP status a failure maps to at the boundary.
// Services raise these for ownership, existence and uniqueness failures;
// the fiber error handler translates them without leaking internals.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: fiber.StatusConflict, Message: msg}
}

// StatusOf unwraps err to a tagged status; anything untagged is a 500.
func StatusOf(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Message
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	return fiber.StatusInternalServerError, "An internal server error occurred."
}
