// Package error defines domain-specific errors for the BizSuite application.
package error

import "errors"

// Auth boundary errors. Sessions are issued by the external identity
// service; the API only validates bearer tokens.
var (
	// ErrMissingToken is returned when no bearer token is presented.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"

	// Throttling (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-020001"
)
