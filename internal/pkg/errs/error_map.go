/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// Field is set when the message belongs to a single request field.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Kind: KindValidation, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Kind: KindValidation, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Kind: KindValidation, Message: "Malformed JSON body.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Kind: KindValidation, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Kind: KindValidation, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},

	// 3xxx: User and Credential Errors
	ErrEmailAlreadyExists: {Code: ErrEmailAlreadyExists, Kind: KindConflict, Field: "email", Message: "Email already exists", Status: http.StatusBadRequest},
	ErrUserNotFound:       {Code: ErrUserNotFound, Kind: KindNotFound, Field: "email", Message: "User not found", Status: http.StatusNotFound},
	ErrPasswordIncorrect:  {Code: ErrPasswordIncorrect, Kind: KindAuthentication, Field: "password", Message: "Password is not correct", Status: http.StatusBadRequest},
	ErrUnauthorized:       {Code: ErrUnauthorized, Kind: KindAuthentication, Message: "Unauthorized", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Kind: KindInternal, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
