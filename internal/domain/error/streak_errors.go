package error

import "errors"

// Streak domain errors.
var (
	// ErrMissingStreakFields is returned when the user id or streak type is absent.
	ErrMissingStreakFields = errors.New("missing required streak fields")
)

// StreakErrorCode defines error codes for streak errors.
// Format: STK-XXYYYY where XX is category and YYYY is specific error.
type StreakErrorCode string

const (
	ErrCodeMissingStreakFields StreakErrorCode = "STK-010001"
)

// StreakError represents a streak error with code and message.
type StreakError struct {
	Code    StreakErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StreakError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StreakError) Unwrap() error {
	return e.Err
}

// NewStreakError creates a new StreakError with the given code and message.
func NewStreakError(code StreakErrorCode, message string, err error) *StreakError {
	return &StreakError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
