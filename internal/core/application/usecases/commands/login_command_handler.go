package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/session"
	"courier/internal/core/ports"
)

// ErrInvalidCredentials is returned when the submitted username and password
// do not match any known courier account. Wrong username and wrong password
// are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("username or password is incorrect")

// courierAccounts is the fixed allow-list of courier credentials.
// Usernames are matched case-insensitively, passwords exactly.
var courierAccounts = map[string]string{
	"umidjon": "123",
	"admins":  "123",
}

// LoginCommandHandler checks submitted credentials against the courier
// allow-list and, on success, persists a new session.
//
// Example:
//
//	handler := NewLoginCommandHandler(sessionStore, notifier, 800*time.Millisecond)
//	cmd, _ := NewLoginCommand("umidjon", "123")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, ErrInvalidCredentials) {
//	        // show the rejection to the user
//	    }
//	    return err
//	}
type LoginCommandHandler struct {
	sessionStore ports.SessionStore
	notifier     ports.Notifier
	delay        time.Duration
}

// NewLoginCommandHandler creates a handler for login operations.
// The delay simulates the round trip to a real authentication backend and
// may be zero.
func NewLoginCommandHandler(
	sessionStore ports.SessionStore,
	notifier ports.Notifier,
	delay time.Duration,
) LoginCommandHandler {
	return LoginCommandHandler{
		sessionStore: sessionStore,
		notifier:     notifier,
		delay:        delay,
	}
}

// Handle processes the login command.
// Waits out the configured delay, matches the credentials, and on success
// saves a session for the courier. A cancelled context aborts the attempt
// before any credential check or persistence happens.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := wait(ctx, h.delay); err != nil {
		return err
	}

	password, known := courierAccounts[strings.ToLower(cmd.Username())]
	if !known || password != cmd.Password() {
		h.notifier.Notify(ctx, ports.Notification{
			Title:       "Login failed",
			Description: "Username or password is incorrect",
			Severity:    ports.SeverityError,
		})
		return ErrInvalidCredentials
	}

	sess, err := session.NewSession(cmd.Username())
	if err != nil {
		return err
	}

	if err := h.sessionStore.Save(ctx, sess); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Title:       "Logged in",
		Description: "Welcome back, " + sess.Username(),
		Severity:    ports.SeverityInfo,
	})

	return nil
}

// wait blocks for the given duration or until the context is cancelled,
// whichever comes first.
func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
