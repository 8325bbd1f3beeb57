package handlers

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages shared by every handler
const (
	MsgInvalidJSON       = "Invalid JSON in request body"
	MsgMissingField      = "Missing required field"
	MsgUnsupportedMethod = "Unsupported method"
	MsgUnsupportedPath   = "Unsupported path"
)

// MalformedBodyError is returned when a body that must be JSON cannot be decoded
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a required field is absent
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", MsgMissingField, e.Field)
}

// isMalformedBodyError checks if an error is a malformed body error
func isMalformedBodyError(err error) bool {
	var target *MalformedBodyError
	return errors.As(err, &target)
}

// isValidationError checks if an error is a validation error
func isValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ErrorKind names the error class for logging
func ErrorKind(err error) string {
	switch {
	case isMalformedBodyError(err):
		return "malformed_body"
	case isValidationError(err):
		return "validation"
	default:
		return "unknown"
	}
}

// ErrorResult converts a handler error into the result the client sees.
// Every error a handler can produce is a client error; none are fatal.
func ErrorResult(err error) *Result {
	message := err.Error()
	if isMalformedBodyError(err) {
		message = MsgInvalidJSON
	}
	return &Result{StatusCode: http.StatusBadRequest, Payload: Payload{"message": message}}
}
