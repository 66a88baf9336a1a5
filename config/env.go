package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Values embedded at build time via -ldflags take precedence over the environment.
var (
	embeddedBaseURL     string
	embeddedSupabaseURL string
	embeddedSupabaseKey string
	embeddedResetURL    string
)

const defaultBaseURL = "http://localhost:8080"

// Provider names accepted by AUTH_PROVIDER
const (
	ProviderHTTP     = "http"
	ProviderSupabase = "supabase"
)

// Settings is the runtime configuration of the client
type Settings struct {
	BaseURL          string
	AuthProvider     string
	SupabaseURL      string
	SupabaseKey      string
	PasswordResetURL string
	LogLevel         string
	LogFile          string
}

// Load reads .env (if present) and the process environment
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load environment: %w", err)
	}

	settings := Settings{
		BaseURL:          firstNonEmpty(embeddedBaseURL, os.Getenv("BASE_URL"), defaultBaseURL),
		AuthProvider:     firstNonEmpty(os.Getenv("AUTH_PROVIDER"), ProviderHTTP),
		SupabaseURL:      firstNonEmpty(embeddedSupabaseURL, os.Getenv("SUPABASE_URL")),
		SupabaseKey:      firstNonEmpty(embeddedSupabaseKey, os.Getenv("SUPABASE_KEY")),
		PasswordResetURL: firstNonEmpty(embeddedResetURL, os.Getenv("PASSWORD_RESET_URL")),
		LogLevel:         firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
		LogFile:          firstNonEmpty(os.Getenv("LOG_FILE"), filepath.Join(DataDir, "photohunter.log")),
	}

	switch settings.AuthProvider {
	case ProviderHTTP, ProviderSupabase:
	default:
		return Settings{}, fmt.Errorf("unknown AUTH_PROVIDER %q", settings.AuthProvider)
	}

	return settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
