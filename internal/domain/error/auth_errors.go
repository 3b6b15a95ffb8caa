package error

import "errors"

// Auth errors surfaced by the HTTP middleware. Full authentication lives in
// an external service; the API only verifies bearer tokens it is handed.
var (
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: ATH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "ATH-010001"
	ErrCodeInvalidToken AuthErrorCode = "ATH-010002"
	ErrCodeRateLimited  AuthErrorCode = "ATH-010003"
)
