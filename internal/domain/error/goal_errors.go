// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Goal and progress domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or does not
	// belong to the caller. Ownership failures deliberately look identical
	// to missing goals.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidProgressAmount is returned when the progress amount is not a
	// finite, non-negative number.
	ErrInvalidProgressAmount = errors.New("invalid progress amount")

	// ErrInvalidTargetAmount is returned when a goal's target amount is negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidReminderFrequency is returned when the reminder frequency is
	// not one of daily, weekly or never.
	ErrInvalidReminderFrequency = errors.New("invalid reminder frequency")

	// ErrMissingGoalFields is returned when required goal fields are absent.
	ErrMissingGoalFields = errors.New("missing required goal fields")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound             GoalErrorCode = "GOL-010001"
	ErrCodeInvalidProgressAmount    GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount      GoalErrorCode = "GOL-010003"
	ErrCodeInvalidReminderFrequency GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields        GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
