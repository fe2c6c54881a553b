/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error interface
and carries a business code, an error kind, a user-facing message, optional per-field
messages and the HTTP status code used when the error reaches a client.
*/
package errs

import (
	"errors"
	"fmt"
	"maps"
	"net/http"

	"usersvc/internal/pkg/logx"
)

// Kind classifies an error for callers that only care about its category.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindNotFound       Kind = "not_found"
	KindAuthentication Kind = "authentication"
	KindInternal       Kind = "internal"
)

// FieldErrors maps a request field name to the message describing why it was rejected.
type FieldErrors map[string]string

// CustomError is the custom error structure used throughout the application.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Kind is the category of the error.
	Kind Kind

	// Message is the user-friendly error description.
	Message string

	// Status is the standard HTTP status code corresponding to this error.
	Status int

	// Field names the request field the Message refers to, if any.
	Field string

	// Fields holds one message per rejected field for validation failures.
	Fields FieldErrors
}

// Error implements the standard Go error interface.
func (e *CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// Body returns the client-facing representation of the error: the field map when the
// error refers to request fields, {"error": message} otherwise.
func (e *CustomError) Body() map[string]string {
	if len(e.Fields) > 0 {
		return maps.Clone(e.Fields)
	}
	if e.Field != "" {
		return map[string]string{e.Field: e.Message}
	}
	return map[string]string{"error": e.Message}
}

// NewError constructs a new *CustomError from a predefined error code.
// For ErrUnknown the first detail, when it is an error, is logged and never exposed.
// Details are ignored for every other code. An unknown code yields ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusInternalServerError
	}

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(
				originalErr,
				"Handling ErrUnknown with underlying error",
			)
		}
	}

	return &customErr
}

// NewValidationError builds an ErrInvalidParams error carrying one message per field.
func NewValidationError(fields FieldErrors) *CustomError {
	customErr := NewError(ErrInvalidParams)
	customErr.Fields = maps.Clone(fields)
	return customErr
}

// From converts any error into a *CustomError. Errors that are not already a
// *CustomError are logged and reported as ErrUnknown.
func From(err error) *CustomError {
	if err == nil {
		return nil
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	return NewError(ErrUnknown, err)
}
