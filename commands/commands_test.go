package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"photohunter-cli/auth"
	"photohunter-cli/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSession struct {
	err   error
	calls []auth.Credentials
}

func (m *mockSession) Login(ctx context.Context, creds auth.Credentials) error {
	m.calls = append(m.calls, creds)
	return m.err
}

type mockStore struct {
	session  config.Session
	err      error
	valid    bool
	clearErr error
	cleared  bool
}

func (m *mockStore) Current() (config.Session, error) { return m.session, m.err }
func (m *mockStore) HasSession() bool                 { return m.valid }
func (m *mockStore) Clear() error {
	m.cleared = true
	return m.clearErr
}

func TestRunLogin(t *testing.T) {
	tests := []struct {
		name      string
		flagEmail string
		flagPass  string
		stdin     string
		loginErr  error
		wantCreds auth.Credentials
		wantErr   string
		wantOut   string
	}{
		{
			name:      "flags only",
			flagEmail: "a@b.com",
			flagPass:  "pw123",
			wantCreds: auth.Credentials{Email: "a@b.com", Password: "pw123"},
			wantOut:   "Signed in as a@b.com",
		},
		{
			name:      "prompts for missing values",
			stdin:     "a@b.com\npw123\n",
			wantCreds: auth.Credentials{Email: "a@b.com", Password: "pw123"},
			wantOut:   "Email: Password: Signed in as a@b.com",
		},
		{
			name:      "last line without newline",
			flagEmail: "a@b.com",
			stdin:     "pw123",
			wantCreds: auth.Credentials{Email: "a@b.com", Password: "pw123"},
		},
		{
			name:      "server message",
			flagEmail: "a@b.com",
			flagPass:  "wrong",
			loginErr:  &auth.AuthError{Status: 400, Message: "Invalid credentials"},
			wantCreds: auth.Credentials{Email: "a@b.com", Password: "wrong"},
			wantErr:   "login failed: Invalid credentials",
		},
		{
			name:      "transport failure",
			flagEmail: "a@b.com",
			flagPass:  "pw123",
			loginErr:  &auth.AuthError{Err: errors.New("connection refused")},
			wantCreds: auth.Credentials{Email: "a@b.com", Password: "pw123"},
			wantErr:   "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &mockSession{err: tt.loginErr}
			var out bytes.Buffer

			err := runLogin(context.Background(), session, strings.NewReader(tt.stdin), &out, tt.flagEmail, tt.flagPass)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, session.calls, 1)
			assert.Equal(t, tt.wantCreds, session.calls[0])
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestRunLogin_EmptyInput(t *testing.T) {
	session := &mockSession{}

	err := runLogin(context.Background(), session, strings.NewReader(""), &bytes.Buffer{}, "", "")

	assert.Error(t, err)
	assert.Empty(t, session.calls)
}

func TestRunLogout(t *testing.T) {
	store := &mockStore{}
	var out bytes.Buffer

	require.NoError(t, runLogout(store, &out))

	assert.True(t, store.cleared)
	assert.Equal(t, "Logged out.\n", out.String())
}

func TestRunLogout_Error(t *testing.T) {
	store := &mockStore{clearErr: errors.New("permission denied")}

	err := runLogout(store, &bytes.Buffer{})

	assert.EqualError(t, err, "permission denied")
}

func TestRunWhoami(t *testing.T) {
	tests := []struct {
		name  string
		store *mockStore
		want  []string
	}{
		{
			name: "active session",
			store: &mockStore{
				session: config.Session{Email: "a@b.com", Name: "fullname", ExpiresAt: time.Now().Add(time.Hour)},
				valid:   true,
			},
			want: []string{"a@b.com", "fullname", "active"},
		},
		{
			name:  "expired session",
			store: &mockStore{session: config.Session{Email: "a@b.com"}},
			want:  []string{"a@b.com", "expired", "-"},
		},
		{
			name:  "no session",
			store: &mockStore{err: config.ErrNoSession},
			want:  []string{"Not logged in."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			require.NoError(t, runWhoami(tt.store, &out))

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunWhoami_ReadError(t *testing.T) {
	store := &mockStore{err: errors.New("corrupt session file")}

	err := runWhoami(store, &bytes.Buffer{})

	assert.EqualError(t, err, "corrupt session file")
}

func TestNewAuthProvider(t *testing.T) {
	provider, err := newAuthProvider(config.Settings{AuthProvider: config.ProviderHTTP, BaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	assert.IsType(t, &auth.HTTPAuth{}, provider)

	_, err = newAuthProvider(config.Settings{AuthProvider: config.ProviderSupabase})
	assert.Error(t, err)

	provider, err = newAuthProvider(config.Settings{
		AuthProvider: config.ProviderSupabase,
		SupabaseURL:  "https://project.supabase.co",
		SupabaseKey:  "anon-key",
	})
	require.NoError(t, err)
	assert.IsType(t, &auth.SupabaseAuth{}, provider)
}

func TestRootCmd_Version(t *testing.T) {
	loadApp = func() (*app, error) {
		t.Fatal("version must not load the application")
		return nil, nil
	}
	t.Cleanup(func() { loadApp = newApp })

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "photohunter "+version+"\n", out.String())
}

func TestRootCmd_LoadError(t *testing.T) {
	loadApp = func() (*app, error) { return nil, errors.New("unknown AUTH_PROVIDER") }
	t.Cleanup(func() { loadApp = newApp })

	for _, args := range [][]string{{"login"}, {"logout"}, {"whoami"}} {
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)

		err := root.Execute()

		assert.EqualError(t, err, "unknown AUTH_PROVIDER", args[0])
	}
}
