// Package config builds the runtime configuration from defaults and
// FOLIO_* environment variables. There is no config file: the service is
// meant to run from a unit file or container where env is the source of
// truth.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Profile ProfileConfig
	Auth    AuthConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type GeminiConfig struct {
	// APIKey may be empty; the server then runs in degraded mode and answers
	// from fallback templates only.
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	DataDir string
}

type ProfileConfig struct {
	// Path to a profile JSON file; empty means the embedded default profile.
	Path string
}

type AuthConfig struct {
	// AdminToken guards the analytics routes. Empty disables them.
	AdminToken string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server:  ServerConfig{Port: 4000},
		Gemini:  GeminiConfig{Model: "gemini-1.5-flash"},
		Storage: StorageConfig{DataDir: defaultDataDir()},
		Log:     LogConfig{Level: "info"},
	}
}

func defaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "foliochat-data"
		}
	}
	return filepath.Join(dir, "foliochat")
}

// Load reads configuration from defaults overridden by environment
// variables. A missing Gemini API key is not an error.
func Load() (Config, error) {
	return loadWith(os.Getenv)
}

// loadWith is the seam for tests: env mimics os.Getenv.
func loadWith(env func(string) string) (Config, error) {
	cfg := defaults()

	str := func(key string, dst *string) {
		if v := env(key); v != "" {
			*dst = v
		}
	}
	str("FOLIO_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	str("FOLIO_GEMINI_MODEL", &cfg.Gemini.Model)
	str("FOLIO_GEMINI_BASE_URL", &cfg.Gemini.BaseURL)
	str("FOLIO_DATA_DIR", &cfg.Storage.DataDir)
	str("FOLIO_PROFILE_PATH", &cfg.Profile.Path)
	str("FOLIO_ADMIN_TOKEN", &cfg.Auth.AdminToken)
	str("FOLIO_LOG_LEVEL", &cfg.Log.Level)

	if v := env("FOLIO_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FOLIO_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Server.Port)
	}

	return cfg, nil
}
