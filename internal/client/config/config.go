// Package config loads runtime settings for the eventbook terminal client.
// Sources are applied in order (defaults, JSON file, environment, flags)
// with later sources taking precedence.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - BaseURL: root of the booking service API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - DataDir: where the session record and saved QR images live. Empty
//     means the platform user-config directory.
type Config struct {
	BaseURL        string        `env:"EVENTBOOK_API_URL"`
	RequestTimeout time.Duration `env:"EVENTBOOK_TIMEOUT"`
	DataDir        string        `env:"EVENTBOOK_DATA_DIR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DataDir = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a JSON file (-c/-config), environment variables (optionally via a
// .env file), and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// ResolveDataDir returns the effective data directory, creating it if
// needed. With an empty DataDir it resolves under the user config dir,
// falling back to the working directory when that is unavailable.
func (c *Config) ResolveDataDir() (string, error) {
	dir := c.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, "eventbook")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
