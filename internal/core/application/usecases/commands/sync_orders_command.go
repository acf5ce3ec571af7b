package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrSyncOrdersCommandIsNotConstructed = errors.New(
	"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
)

// SyncOrdersCommand represents a request to pull orders from the configured
// source into the working set.
type SyncOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncOrdersCommand creates a sync command.
func NewSyncOrdersCommand() SyncOrdersCommand {
	return SyncOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncOrdersCommandIsNotConstructed if validation fails.
func (c SyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
}
