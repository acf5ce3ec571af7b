package ports

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/session"
)

// ErrNoSession is returned by Load when no courier is logged in: the login
// flag is absent, not "true", or the stored state is malformed. Missing and
// malformed state are deliberately indistinguishable so the guard fails
// closed either way.
var ErrNoSession = errors.New("no active session")

// SessionStore persists the courier's login state between processes.
// The persisted contract is two string keys, "isLoggedIn" and "username",
// with no expiry, version, or integrity check.
type SessionStore interface {
	// Save persists the session's login flag and username.
	Save(ctx context.Context, sess session.Session) error

	// Load restores the current session, or returns ErrNoSession.
	Load(ctx context.Context) (session.Session, error)

	// Clear removes the login flag and username.
	// Clearing an already empty store is not an error.
	Clear(ctx context.Context) error
}
