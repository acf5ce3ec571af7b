package commands

import (
	"errors"
	"strings"

	"courier/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// LoginCommand represents a courier's request to start a working session.
// Carries the credentials exactly as entered; matching rules are applied by
// the handler.
//
// Example:
//
//	cmd, err := NewLoginCommand("Umidjon", "123")
//	if err != nil {
//	    return fmt.Errorf("invalid credentials input: %w", err)
//	}
//
//	handler := NewLoginCommandHandler(sessionStore, notifier, 800*time.Millisecond)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("login failed: %w", err)
//	}
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command from raw credential input.
// Validates that neither field is blank. Returns an error if validation fails.
func NewLoginCommand(username string, password string) (LoginCommand, error) {
	loginCommand := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginCommand.setUsername(username),
		loginCommand.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the username as entered, surrounding whitespace removed.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the password as entered.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
