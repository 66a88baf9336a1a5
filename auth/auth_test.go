package auth

import (
	"context"
	"errors"
	"testing"
)

// MockAuthProvider implements AuthProvider for testing
type MockAuthProvider struct {
	signInFunc func(ctx context.Context, email, password string) (string, error)
	calls      int
}

func (m *MockAuthProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	m.calls++
	if m.signInFunc != nil {
		return m.signInFunc(ctx, email, password)
	}
	return "mock-token", nil
}

// MockSessionWriter implements SessionWriter for testing
type MockSessionWriter struct {
	updateSessionFunc func(email, accessToken string) error
	email             string
	token             string
}

func (m *MockSessionWriter) UpdateSession(email, accessToken string) error {
	m.email = email
	m.token = accessToken
	if m.updateSessionFunc != nil {
		return m.updateSessionFunc(email, accessToken)
	}
	return nil
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	mockAuth := &MockAuthProvider{
		signInFunc: func(ctx context.Context, email, password string) (string, error) {
			return "test-token", nil
		},
	}
	mockWriter := &MockSessionWriter{}
	service := NewAuthService(mockAuth, mockWriter)

	// Act
	err := service.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw123"})

	// Assert
	if err != nil {
		t.Fatalf("Expected login to succeed, got %v", err)
	}
	if mockWriter.email != "a@b.com" || mockWriter.token != "test-token" {
		t.Errorf("Expected session for a@b.com/test-token, got %s/%s", mockWriter.email, mockWriter.token)
	}
}

func TestAuthService_Login_PassesEmptyCredentialsThrough(t *testing.T) {
	// Arrange
	var gotEmail, gotPassword = "unset", "unset"
	mockAuth := &MockAuthProvider{
		signInFunc: func(ctx context.Context, email, password string) (string, error) {
			gotEmail, gotPassword = email, password
			return "", &AuthError{Status: 400, Message: "bad login data"}
		},
	}
	service := NewAuthService(mockAuth, &MockSessionWriter{})

	// Act
	err := service.Login(context.Background(), Credentials{})

	// Assert
	if mockAuth.calls != 1 {
		t.Fatalf("Expected provider to be called once, got %d", mockAuth.calls)
	}
	if gotEmail != "" || gotPassword != "" {
		t.Errorf("Expected empty credentials, got %q/%q", gotEmail, gotPassword)
	}
	if MessageOf(err) != "bad login data" {
		t.Errorf("Expected message 'bad login data', got '%s'", MessageOf(err))
	}
}

func TestAuthService_Login_WrapsPlainErrors(t *testing.T) {
	// Arrange
	cause := errors.New("connection refused")
	mockAuth := &MockAuthProvider{
		signInFunc: func(ctx context.Context, email, password string) (string, error) {
			return "", cause
		},
	}
	service := NewAuthService(mockAuth, &MockSessionWriter{})

	// Act
	err := service.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})

	// Assert
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Expected *AuthError, got %T", err)
	}
	if authErr.Message != "" {
		t.Errorf("Expected no message, got '%s'", authErr.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to wrap the provider cause")
	}
}

func TestAuthService_Login_SessionSaveError(t *testing.T) {
	// Arrange
	mockWriter := &MockSessionWriter{
		updateSessionFunc: func(email, accessToken string) error {
			return errors.New("disk full")
		},
	}
	service := NewAuthService(&MockAuthProvider{}, mockWriter)

	// Act
	err := service.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})

	// Assert
	expected := "Failed to save session: disk full"
	if MessageOf(err) != expected {
		t.Errorf("Expected message '%s', got '%s'", expected, MessageOf(err))
	}
}

func TestMessageOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "plain error", err: errors.New("boom"), expected: ""},
		{name: "auth error without message", err: &AuthError{Status: 500}, expected: ""},
		{name: "auth error with message", err: &AuthError{Status: 400, Message: "Invalid credentials"}, expected: "Invalid credentials"},
		{name: "wrapped auth error", err: errors.Join(errors.New("ctx"), &AuthError{Message: "nested"}), expected: "nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageOf(tt.err); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestNewAuthService(t *testing.T) {
	// Arrange
	mockAuth := &MockAuthProvider{}
	mockWriter := &MockSessionWriter{}

	// Act
	service := NewAuthService(mockAuth, mockWriter)

	// Assert
	if service == nil {
		t.Fatal("Expected service to be created")
	}
	if service.authProvider != mockAuth {
		t.Error("Expected auth provider to be set correctly")
	}
	if service.sessionWriter != mockWriter {
		t.Error("Expected session writer to be set correctly")
	}
}
