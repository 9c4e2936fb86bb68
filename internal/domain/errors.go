package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories callers switch on.
type ErrorKind string

const (
	KindAuthentication     ErrorKind = "authentication"
	KindInvalidParameter   ErrorKind = "invalid_parameter"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindAPI                ErrorKind = "api"
	KindDomain             ErrorKind = "domain"
)

// Error is the single error type that crosses component boundaries.
// API-kind errors carry the remote status code and response payload.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, StatusCode: 401, Message: message}
}

func NewInvalidParameterError(message string) *Error {
	return &Error{Kind: KindInvalidParameter, StatusCode: 400, Message: message}
}

func NewServiceUnavailableError(message string, cause error) *Error {
	return &Error{Kind: KindServiceUnavailable, StatusCode: 503, Message: message, cause: cause}
}

func NewAPIError(statusCode int, payload string, cause error) *Error {
	return &Error{Kind: KindAPI, StatusCode: statusCode, Message: payload, cause: cause}
}

func NewDomainError(message string) *Error {
	return &Error{Kind: KindDomain, Message: message}
}

// AsError unwraps err to a taxonomy error if it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the taxonomy kind of err, or KindAPI for unknown errors.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindAPI
}

// Normalize passes recognized taxonomy errors through unchanged and wraps
// anything else as an API failure with status 500 and the given context
// label. Applied at every remote-call boundary.
func Normalize(err error, context string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := AsError(err); ok {
		return e
	}
	return &Error{
		Kind:       KindAPI,
		StatusCode: 500,
		Message:    fmt.Sprintf("%s: %v", context, err),
		cause:      err,
	}
}
