package session

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created
	// through the NewSession factory function.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// Session is the courier's login state as an explicit object, threaded through
// protected operations instead of being read ad hoc from ambient storage.
//
// The id identifies the in-process session for log correlation; it is
// regenerated every time the session is restored from the persistent store and
// is deliberately never persisted, since the stored contract is only the login
// flag and the username.
type Session struct {
	id       kernel.UUID
	username string

	isConstructed bool
}

// NewSession creates a session for the given courier username.
// The username must be non-blank; it is stored lowercased, matching the
// case-insensitive login check.
func NewSession(username string) (Session, error) {
	if strings.TrimSpace(username) == "" {
		return Session{}, errs.NewValueIsRequiredError("username")
	}

	return Session{
		id:            kernel.NewUUID(),
		username:      strings.ToLower(username),
		isConstructed: true,
	}, nil
}

// Validate ensures the Session was created via NewSession.
func (s Session) Validate() error {
	if !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the process-local session identifier.
func (s Session) ID() kernel.UUID {
	return s.id
}

// Username returns the logged-in courier's username, lowercased.
func (s Session) Username() string {
	return s.username
}
