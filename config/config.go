package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}

	DataDir = filepath.Join(homeDir, ".photohunter")
	SessionFilePath = filepath.Join(DataDir, "session.yml")
}

var (
	DataDir         string
	SessionFilePath string
)

// Session is the persisted login state. The password is never stored.
type Session struct {
	Email       string    `yaml:"email"`
	Name        string    `yaml:"name,omitempty"`
	AccessToken string    `yaml:"access_token"`
	ExpiresAt   time.Time `yaml:"expires_at,omitempty"`
	LastUpdated time.Time `yaml:"last_updated"`
}

// readSession reads the session from the session file
// This is private - use SessionManager methods instead
func readSession() (Session, error) {
	var session Session
	data, err := os.ReadFile(SessionFilePath)
	if err != nil {
		return session, err
	}
	err = yaml.Unmarshal(data, &session)
	return session, err
}

// writeSession writes the session to the session file
// This is private - use SessionManager methods instead
func writeSession(session Session) error {
	if err := os.MkdirAll(filepath.Dir(SessionFilePath), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := yaml.Marshal(&session)
	if err != nil {
		return err
	}
	return os.WriteFile(SessionFilePath, data, 0o600)
}

// isExpired reports whether the session can no longer be used.
// Sessions without a token expiry fall back to a 24 hour lifetime.
func isExpired(session Session, now time.Time) bool {
	if !session.ExpiresAt.IsZero() {
		return !now.Before(session.ExpiresAt)
	}
	return now.Sub(session.LastUpdated) >= 24*time.Hour
}
