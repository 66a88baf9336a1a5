package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"photohunter-cli/auth"
	"photohunter-cli/logger"
)

// ErrNoSession is returned when there is no usable stored session
var ErrNoSession = errors.New("no active session")

// SessionManager handles the persisted session
type SessionManager struct {
	now func() time.Time
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{now: time.Now}
}

// HasSession checks if a non-expired session is stored
func (m *SessionManager) HasSession() bool {
	session, err := readSession()
	if err != nil {
		return false
	}
	return session.AccessToken != "" && !isExpired(session, m.now())
}

// HasExpiredSession reports whether a session is stored but no longer valid
func (m *SessionManager) HasExpiredSession() bool {
	session, err := readSession()
	if err != nil {
		return false
	}
	return session.AccessToken != "" && isExpired(session, m.now())
}

// Current returns the stored session, expired or not
func (m *SessionManager) Current() (Session, error) {
	session, err := readSession()
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return session, nil
}

// UpdateSession stores a freshly issued token for email
func (m *SessionManager) UpdateSession(email, accessToken string) error {
	session := Session{
		Email:       email,
		AccessToken: accessToken,
		LastUpdated: m.now(),
	}

	identity, err := auth.ParseIdentity(accessToken)
	if err != nil {
		// Opaque tokens (e.g. from other providers) still get stored.
		logger.Log.Debugw("access token is not a readable JWT", "error", err)
	} else {
		session.Name = identity.Name
		session.ExpiresAt = identity.ExpiresAt
		if identity.Email != "" {
			session.Email = identity.Email
		}
	}

	return writeSession(session)
}

// GetToken returns the stored access token if the session is still valid
func (m *SessionManager) GetToken() (string, error) {
	session, err := m.Current()
	if err != nil {
		return "", err
	}
	if session.AccessToken == "" {
		return "", ErrNoSession
	}
	if isExpired(session, m.now()) {
		return "", fmt.Errorf("session expired: %w", ErrNoSession)
	}
	return session.AccessToken, nil
}

// Clear removes the stored session
func (m *SessionManager) Clear() error {
	err := os.Remove(SessionFilePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
