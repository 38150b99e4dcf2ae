package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/curatescience/curate/cli/internal/profile"
)

// Config holds CLI configuration stored at ~/.curate/config. Environment
// variables override the file.
type Config struct {
	BaseURL    string `yaml:"base_url" env:"CURATE_BASE_URL"`
	CSRFToken  string `yaml:"csrf_token,omitempty" env:"CURATE_CSRF_TOKEN"`
	SessionID  string `yaml:"session_id,omitempty" env:"CURATE_SESSION_ID"`
	Username   string `yaml:"username,omitempty"`
	AuthorID   int    `yaml:"author_id,omitempty"`
	AuthorSlug string `yaml:"author_slug,omitempty"`
	Admin      bool   `yaml:"admin,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty" env:"CURATE_LOG_LEVEL"`
	LogPath    string `yaml:"log_path,omitempty" env:"CURATE_LOG_PATH"`
}

// Dir returns the directory holding config and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".curate")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads the config file and applies environment overrides. Returns an
// error wrapping os.ErrNotExist when the file is missing.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a config from the environment alone, for runs without a
// config file.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	return nil
}

// Session returns the viewing session described by the config.
func (c *Config) Session() profile.Session {
	if c == nil {
		return profile.Session{}
	}
	return profile.Session{Admin: c.Admin, AuthorID: c.AuthorID}
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
