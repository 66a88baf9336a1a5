package auth

import (
	"context"
	"errors"
	"fmt"

	"photohunter-cli/logger"
)

// AuthProvider interface for authentication backends
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// SessionWriter persists the session obtained by a successful sign in
type SessionWriter interface {
	UpdateSession(email, accessToken string) error
}

// Session is the capability the login screen depends on
type Session interface {
	Login(ctx context.Context, creds Credentials) error
}

// AuthService handles the login flow on top of a provider
type AuthService struct {
	authProvider  AuthProvider
	sessionWriter SessionWriter
}

// NewAuthService creates a new authentication service
func NewAuthService(authProvider AuthProvider, sessionWriter SessionWriter) *AuthService {
	return &AuthService{
		authProvider:  authProvider,
		sessionWriter: sessionWriter,
	}
}

// Login signs in with the given credentials and stores the resulting session.
// Rejections are always returned as *AuthError.
func (s *AuthService) Login(ctx context.Context, creds Credentials) error {
	token, err := s.authProvider.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		logger.Log.Infow("sign in rejected", "email", creds.Email, "error", err)
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return authErr
		}
		return &AuthError{Err: err}
	}

	if err := s.sessionWriter.UpdateSession(creds.Email, token); err != nil {
		logger.Log.Errorw("failed to persist session", "email", creds.Email, "error", err)
		return &AuthError{
			Message: fmt.Sprintf("Failed to save session: %v", err),
			Err:     err,
		}
	}

	logger.Log.Infow("signed in", "email", creds.Email)
	return nil
}
