package auth

import (
	"errors"
	"fmt"
)

// Credentials is the email/password pair entered on the login screen.
// No validation is applied; empty values are sent as-is.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthError is returned when the backend (or the transport in front of it)
// rejects a request. Message holds the human-readable text supplied by the
// server and is empty when the server sent none.
type AuthError struct {
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("auth rejected (%d): %s", e.Status, e.Message)
	case e.Message != "":
		return "auth rejected: " + e.Message
	case e.Err != nil:
		return "auth rejected: " + e.Err.Error()
	case e.Status != 0:
		return fmt.Sprintf("auth rejected with status %d", e.Status)
	default:
		return "auth rejected"
	}
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// MessageOf returns the server-supplied message carried by err, or "" when
// err is nil or carries no message.
func MessageOf(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return ""
}
