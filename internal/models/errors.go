// Package models contains data structures for the application's domain models.
package models

import "fmt"

// Error codes used by the HTTP boundary to pick a status code.
const (
	CodeInvariant      = "INVARIANT_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeAuthorization  = "AUTHORIZATION_ERROR"
	CodeNotFound       = "NOT_FOUND_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvariantError reports a malformed payload or business-rule violation (400).
func NewInvariantError(message string) *AppError {
	return &AppError{
		Code:    CodeInvariant,
		Message: message,
	}
}

// NewAuthenticationError reports a credential mismatch (401).
func NewAuthenticationError(message string) *AppError {
	return &AppError{
		Code:    CodeAuthentication,
		Message: message,
	}
}

// NewAuthorizationError reports an ownership violation (403).
func NewAuthorizationError(message string) *AppError {
	return &AppError{
		Code:    CodeAuthorization,
		Message: message,
	}
}

// NewNotFoundError reports a missing referenced entity (404).
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

// NewInternalError wraps an unexpected server-side failure (500).
// The wrapped error is logged but never leaks to the client.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// NewDomainError carries a structured domain code (e.g.
// "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY") raised close to its source.
// The HTTP boundary translates known codes into client-facing messages;
// unknown codes fall through as server errors.
func NewDomainError(code string) *AppError {
	return &AppError{
		Code:    code,
		Message: code,
	}
}
