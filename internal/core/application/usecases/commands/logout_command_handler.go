package commands

import (
	"context"

	"courier/internal/core/ports"
)

// LogoutCommandHandler ends the current working session by clearing the
// persisted login state. Logging out when no session exists is not an error.
type LogoutCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(sessionStore ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the logout command by clearing the session store.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessionStore.Clear(ctx)
}
