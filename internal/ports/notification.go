package ports

import "context"

// NotificationMessage is the one-line system notification for a snapshot
type NotificationMessage struct {
	Title string
	Text  string
}

// Notifier delivers a weather notification to some surface
type Notifier interface {
	Notify(ctx context.Context, message NotificationMessage) error
}

// EmailParams represents parameters for sending emails
type EmailParams struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

// EmailProvider defines the contract for email sending
type EmailProvider interface {
	SendEmail(ctx context.Context, params EmailParams) error
}
