package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Tokens.
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenIsNotRefresh    = errors.New("token is not a refresh token")
	ErrTokenIsNotAccess     = errors.New("token is not an access token")

	// Authorization.
	ErrEmptyAuthHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthHeader = errors.New("authorization header has invalid format")
	// Deliberately the same message for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Common.
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// HttpError carries the HTTP status a failure should surface with, a message
// safe to show the user, the wrapped cause and optional structured details.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// CodeFor maps sentinel errors to HTTP status codes. Unknown errors are
// treated as internal.
func CodeFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrEmptyAuthHeader),
		errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenIsNotRefresh),
		errors.Is(err, ErrTokenIsNotAccess):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
