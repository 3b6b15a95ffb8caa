package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderStatus represents the delivery state of a reminder.
type ReminderStatus string

const (
	ReminderStatusPending ReminderStatus = "pending"
	ReminderStatusSent    ReminderStatus = "sent"
	ReminderStatusFailed  ReminderStatus = "failed"
)

// ReminderUrgency ranks how pressing a reminder is, used to order delivery
// and pick message tone.
type ReminderUrgency string

const (
	UrgencyLow    ReminderUrgency = "low"
	UrgencyNormal ReminderUrgency = "normal"
	UrgencyMedium ReminderUrgency = "medium"
	UrgencyHigh   ReminderUrgency = "high"
)

// Reminder is a generated goal-progress nudge waiting to be delivered.
type Reminder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	GoalID      uuid.UUID
	Title       string
	Message     string
	Urgency     ReminderUrgency
	Status      ReminderStatus
	Attempts    int
	MaxAttempts int
	LastError   string
	SentAt      *time.Time
	CreatedAt   time.Time
}

// NewReminder creates a pending Reminder for the given goal.
func NewReminder(userID, goalID uuid.UUID, title, message string, urgency ReminderUrgency) *Reminder {
	return &Reminder{
		ID:          uuid.New(),
		UserID:      userID,
		GoalID:      goalID,
		Title:       title,
		Message:     message,
		Urgency:     urgency,
		Status:      ReminderStatusPending,
		Attempts:    0,
		MaxAttempts: 3,
		CreatedAt:   time.Now().UTC(),
	}
}

// MarkSent records a successful delivery.
func (r *Reminder) MarkSent(at time.Time) {
	r.Status = ReminderStatusSent
	r.SentAt = &at
}

// MarkFailed records a failed delivery attempt. The reminder stays pending
// until its attempts are exhausted or the failure is permanent.
func (r *Reminder) MarkFailed(reason string, permanent bool) {
	r.Attempts++
	r.LastError = reason
	if permanent || r.Attempts >= r.MaxAttempts {
		r.Status = ReminderStatusFailed
	}
}
