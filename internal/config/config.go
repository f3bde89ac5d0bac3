// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hy4ri/todolist-tui/internal/api"
	"gopkg.in/yaml.v3"
)

const (
	appName = "todolist-tui"

	yamlFileName = "config.yaml"
	tomlFileName = "config.toml"

	// EnvAPIURL overrides api.base_url when set.
	EnvAPIURL = "TODOLIST_API_URL"

	// DefaultAPIURL is the hosted todo backend.
	DefaultAPIURL = api.DefaultBaseURL

	// DefaultFeedbackTimeout is how long a success message stays on screen.
	DefaultFeedbackTimeout = 3 * time.Second
)

// Config represents the application configuration.
type Config struct {
	API APIConfig `yaml:"api" toml:"api"`
	UI  UIConfig  `yaml:"ui" toml:"ui"`
	Log LogConfig `yaml:"log" toml:"log"`
}

// APIConfig holds settings for the remote todo collection.
type APIConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url"`

	// Timeout bounds every request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	FeedbackTimeout time.Duration `yaml:"feedback_timeout,omitempty" toml:"feedback_timeout,omitempty"`
	Notifications   bool          `yaml:"notifications" toml:"notifications"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`
	Level string `yaml:"level,omitempty" toml:"level,omitempty"` // debug, info, warn, error
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
		},
		UI: UIConfig{
			FeedbackTimeout: DefaultFeedbackTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the YAML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, yamlFileName), nil
}

// DefaultLogPath returns the log file path used when log.file is not set.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

// Load reads the configuration from the config directory.
// config.yaml wins over config.toml; with neither present the defaults are used.
// The TODOLIST_API_URL environment variable overrides the base URL.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, name := range []string{yamlFileName, tomlFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
		break
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads a single config file. The format is picked from the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to the YAML config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if u := strings.TrimSpace(os.Getenv(EnvAPIURL)); u != "" {
		c.API.BaseURL = u
	}
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		c.API.BaseURL = DefaultAPIURL
	}
	if c.API.Timeout < 0 {
		c.API.Timeout = 0
	}
	if c.UI.FeedbackTimeout <= 0 {
		c.UI.FeedbackTimeout = DefaultFeedbackTimeout
	}
}
