package commands

import (
	"fmt"

	"photohunter-cli/api"
	"photohunter-cli/auth"
	"photohunter-cli/config"
	"photohunter-cli/logger"
)

// app holds the wired dependencies shared by all commands
type app struct {
	settings    config.Settings
	sessions    *config.SessionManager
	authService *auth.AuthService
	client      *api.Client
}

// loadApp is replaced in tests
var loadApp = newApp

func newApp() (*app, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Initialize(settings.LogLevel, settings.LogFile); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := newAuthProvider(settings)
	if err != nil {
		return nil, err
	}

	sessions := config.NewSessionManager()
	logger.Log.Debugw("application configured", "base_url", settings.BaseURL, "provider", settings.AuthProvider)

	return &app{
		settings:    settings,
		sessions:    sessions,
		authService: auth.NewAuthService(provider, sessions),
		client:      api.NewClient(settings.BaseURL, sessions),
	}, nil
}

// newAuthProvider picks the sign-in backend named by AUTH_PROVIDER
func newAuthProvider(settings config.Settings) (auth.AuthProvider, error) {
	switch settings.AuthProvider {
	case config.ProviderSupabase:
		client, err := auth.NewSupabaseClient(settings.SupabaseURL, settings.SupabaseKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create supabase client: %w", err)
		}
		return auth.NewSupabaseAuth(client), nil
	default:
		return auth.NewHTTPAuth(settings.BaseURL), nil
	}
}
