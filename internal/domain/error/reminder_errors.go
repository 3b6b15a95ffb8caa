package error

import "errors"

// Reminder domain errors.
var (
	// ErrReminderQueueFailed is returned when a reminder could not be persisted.
	ErrReminderQueueFailed = errors.New("failed to queue reminder")
)

// ReminderErrorCode defines error codes for reminder errors.
// Format: RMD-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	ErrCodeReminderQueueFailed ReminderErrorCode = "RMD-020001"

	// Delivery errors (03XXXX)
	ErrCodePermanentDeliveryFailure ReminderErrorCode = "RMD-030001"
	ErrCodeTemporaryDeliveryFailure ReminderErrorCode = "RMD-030002"
)

// ReminderError represents a reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
