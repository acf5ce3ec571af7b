// Package filestore persists the courier's login state in a small JSON file,
// the console's stand-in for browser local storage. The stored contract is
// two string keys, "isLoggedIn" and "username", with no expiry, version, or
// integrity check.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"courier/internal/core/domain/model/session"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// sessionDTO mirrors the persisted key-value contract.
type sessionDTO struct {
	IsLoggedIn string `json:"isLoggedIn"`
	Username   string `json:"username"`
}

// FileSessionStore implements ports.SessionStore over a single JSON file.
// Anything unreadable or malformed loads as "not logged in": the guard fails
// closed rather than fatally.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore creates a session store backed by the file at path.
// The file does not need to exist yet.
func NewFileSessionStore(path string) (*FileSessionStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errs.NewValueIsRequiredError("session file path")
	}

	return &FileSessionStore{path: path}, nil
}

// Save persists the session's login flag and username.
func (s *FileSessionStore) Save(_ context.Context, sess session.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(sessionDTO{
		IsLoggedIn: "true",
		Username:   sess.Username(),
	})
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}

// Load restores the current session, or returns ports.ErrNoSession when the
// file is absent, unreadable, malformed, or the login flag is not "true".
func (s *FileSessionStore) Load(_ context.Context) (session.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return session.Session{}, ports.ErrNoSession
	}

	var dto sessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return session.Session{}, ports.ErrNoSession
	}

	if dto.IsLoggedIn != "true" {
		return session.Session{}, ports.ErrNoSession
	}

	sess, err := session.NewSession(dto.Username)
	if err != nil {
		return session.Session{}, ports.ErrNoSession
	}

	return sess, nil
}

// Clear removes the persisted login state. A store that is already empty
// clears without error.
func (s *FileSessionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
