/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006
)

// 3xxx: User and Credential Errors
const (
	// ErrEmailAlreadyExists indicates a registration attempt for an email that is already stored.
	ErrEmailAlreadyExists = 3101

	// ErrUserNotFound indicates that no account matches the supplied email.
	ErrUserNotFound = 3102

	// ErrPasswordIncorrect indicates that the supplied password does not match the stored hash.
	ErrPasswordIncorrect = 3103

	// ErrUnauthorized indicates the request carries no valid identity.
	ErrUnauthorized = 3201
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
