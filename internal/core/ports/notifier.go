package ports

import "context"

// Severity classifies a notification for presentation purposes.
type Severity string

const (
	// SeverityInfo marks routine confirmations (order accepted, logged in).
	SeverityInfo Severity = "info"

	// SeverityError marks user-visible failures (login rejected).
	SeverityError Severity = "error"
)

// Notification is a user-facing message handed to the notification
// collaborator for asynchronous display.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier displays notifications to the courier. Fire-and-forget: the core
// never waits for acknowledgment and a failed notification never fails the
// operation that produced it.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}
