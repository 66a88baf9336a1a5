package auth

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseAuth implements AuthProvider using Supabase
type SupabaseAuth struct {
	client *supabase.Client
}

// NewSupabaseClient builds a Supabase client from a project URL and anon key
func NewSupabaseClient(url, key string) (*supabase.Client, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set")
	}
	return supabase.NewClient(url, key, nil)
}

// NewSupabaseAuth creates a new Supabase authentication provider
func NewSupabaseAuth(client *supabase.Client) *SupabaseAuth {
	return &SupabaseAuth{client: client}
}

// SignIn authenticates a user with Supabase.
// gotrue errors do not expose a server message, so the rejection carries none.
func (s *SupabaseAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	if s.client == nil {
		return "", &AuthError{Err: fmt.Errorf("supabase client is not configured")}
	}
	authResponse, err := s.client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	return authResponse.AccessToken, nil
}
