// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; session credentials go to the
// OS keychain via internal/credstore.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"ptladmin/cli/internal/xdg"
)

// DefaultAPIURL is the backend base path used when nothing is configured.
// The /api/v1 prefix is part of the base; endpoints append /auth, /internos
// and /logs to it.
const DefaultAPIURL = "http://localhost:3000/api/v1"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIURL   string `json:"api_url"`
	LogLevel string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
// PTLADMIN_API_URL overrides the configured base URL when set.
func Load() (Config, error) {
	c := Config{APIURL: DefaultAPIURL, LogLevel: "info"}
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(c), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return applyEnv(c), nil
}

// applyEnv overlays environment overrides on top of file settings.
func applyEnv(c Config) Config {
	if v := strings.TrimSpace(os.Getenv("PTLADMIN_API_URL")); v != "" {
		c.APIURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("PTLADMIN_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	return c
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
