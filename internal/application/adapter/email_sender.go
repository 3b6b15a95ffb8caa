package adapter

import "context"

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending reminder emails.
type EmailSender interface {
	// Send sends a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
