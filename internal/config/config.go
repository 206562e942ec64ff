package config

import (
	"time"
)

// Config is the top-level configuration container for realworld-tui. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// API holds settings for the outbound Conduit API transport.
	API API `envPrefix:"API_"`

	// App holds application-level presentation settings.
	App App `envPrefix:"APP_"`

	// Storage holds settings for the local key-value state store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONDUIT_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONDUIT_CONFIG"`
}

// API holds network settings for the outbound transport.
type API struct {
	// BaseURL is the root of the Conduit backend, without the /api suffix
	// (e.g. "https://api.realworld.io").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the transport cancels it (e.g. "15s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds presentation-level settings.
type App struct {
	// PageSize is the number of articles requested per feed page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// WebBaseURL is the origin of the web front end serving the same
	// backend, used to build shareable article links for the clipboard
	// and browser hand-off actions. It is distinct from API.BaseURL,
	// which is an API host and serves no pages.
	// Env: APP_WEB_BASE_URL
	WebBaseURL string `env:"WEB_BASE_URL"`

	// LogPath is the path of the log file. Empty means a file next to the
	// executable; the terminal itself is owned by the TUI and never logged to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage holds settings for the local state store.
type Storage struct {
	// StateDir is the directory holding persisted client state (the
	// session record). Empty means a "realworld-tui" directory under the
	// user config dir.
	// Env: STORAGE_STATE_DIR
	StateDir string `env:"STATE_DIR"`
}

// Get loads, merges, and validates the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing optional values are filled with defaults before validation.
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Get() (*Config, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *Config) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api.realworld.io"
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 15 * time.Second
	}
	if cfg.App.PageSize == 0 {
		cfg.App.PageSize = 10
	}
	if cfg.App.WebBaseURL == "" {
		cfg.App.WebBaseURL = "https://demo.realworld.io"
	}
}

func (cfg *Config) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}
	if cfg.App.PageSize <= 0 || cfg.App.WebBaseURL == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}
