package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand represents a request to end the current working session.
// Carries no data; the handler clears whatever session is stored.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a logout command.
func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutCommandIsNotConstructed if validation fails.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
