// Package notifier provides a structured-log implementation of the
// notification port. Notifications are emitted as log records so they are
// visible in the service output without a dedicated delivery channel.
package notifier

import (
	"context"
	"log/slog"

	"courier/internal/core/ports"
)

// SlogNotifier writes notifications to a slog.Logger. Informational
// notifications are logged at INFO level and error notifications at ERROR
// level.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier backed by the provided logger.
//
// Parameters:
//   - logger: destination for notification records. Must not be nil.
//
// Example:
//
//	n := notifier.NewSlogNotifier(slog.Default())
//	n.Notify(ctx, ports.Notification{Title: "Logged in", Severity: ports.SeverityInfo})
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// Notify emits the notification as a log record. Never blocks and never
// returns an error: notification failures must not affect the operation
// that produced them.
func (n *SlogNotifier) Notify(ctx context.Context, notification ports.Notification) {
	level := slog.LevelInfo
	if notification.Severity == ports.SeverityError {
		level = slog.LevelError
	}

	n.logger.LogAttrs(ctx, level, notification.Title,
		slog.String("description", notification.Description),
		slog.String("severity", string(notification.Severity)),
	)
}
