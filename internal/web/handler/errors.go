package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrNilDeps is returned by Init when the router or dependencies are missing.
var ErrNilDeps = errors.New(ErrNilDepsFatalLogMsg)

// Messages of the JSON error bodies.
const (
	MsgValidationFailed    = "Validation failed"
	MsgInvalidBody         = "Invalid request body"
	MsgInvalidID           = "Invalid id"
	MsgUnauthorized        = "Unauthorized"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgNotFound            = "Not found"
	MsgInternalServerError = "Internal server error"
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value any    `json:"value"`
}

// Error is an error with an HTTP status and a JSON body. The app's error
// handler writes it as is.
type Error struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// ValidationError is a 400 listing the failed fields.
func ValidationError(fields []FieldError) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: MsgValidationFailed, Errors: fields}
}

// BadRequest is a 400 with the given message.
func BadRequest(msg string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: msg}
}

// Unauthorized is a 401 with the given message.
func Unauthorized(msg string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: msg}
}

// NotFound is a 404 naming the missing resource.
func NotFound(what string) *Error {
	if what == "" {
		what = MsgNotFound
	}

	return &Error{Status: fiber.StatusNotFound, Message: what}
}
