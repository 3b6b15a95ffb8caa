package error

import "errors"

// Motivation domain errors.
var (
	// ErrMotivationUnavailable is returned when the AI service is not configured.
	ErrMotivationUnavailable = errors.New("motivation service unavailable")

	// ErrProfileNotFound is returned when the user has no onboarding profile.
	ErrProfileNotFound = errors.New("profile not found")
)

// MotivationErrorCode defines error codes for motivation errors.
// Format: MOT-XXYYYY where XX is category and YYYY is specific error.
type MotivationErrorCode string

const (
	ErrCodeMotivationUnavailable MotivationErrorCode = "MOT-010001"
	ErrCodeMotivationFailed      MotivationErrorCode = "MOT-020001"
	ErrCodeProfileNotFound       MotivationErrorCode = "MOT-010002"
)

// MotivationError represents a motivation error with code and message.
type MotivationError struct {
	Code    MotivationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MotivationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MotivationError) Unwrap() error {
	return e.Err
}

// NewMotivationError creates a new MotivationError with the given code and message.
func NewMotivationError(code MotivationErrorCode, message string, err error) *MotivationError {
	return &MotivationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
