// Package config handles XDG configuration directory, file paths, and
// the optional config.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "config.yaml"

	// DataFile is the default task file name inside the data directory.
	DataFile = "tasks.txt"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File overrides the task file path when non-empty.
	File string `mapstructure:"file"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"quiet"`

	// Debug enables debug logging.
	Debug bool

	// LogLevel sets the log level when Debug is off ("info" by default).
	LogLevel string `mapstructure:"log_level"`
}

// New creates a Config rooted at the default or specified config
// directory and merges settings from config.yaml if it exists.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir}
	if err := loadSettings(filepath.Join(dir, SettingsFile), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSettings merges config.yaml into cfg. A missing file is not an
// error; a present but unreadable one is.
func loadSettings(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DataPath returns the task file path: the configured override if set,
// otherwise the default data directory.
func (c *Config) DataPath() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(DefaultDataDir(), DataFile)
}

// EnsureDataDir creates the directory containing the task file.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(filepath.Dir(c.DataPath()), 0700)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
