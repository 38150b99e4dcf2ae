package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/config"
)

// LoadConfig reads the config file, falling back to the environment when no
// file exists yet.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return config.FromEnv()
}

// ClientFromConfig builds an API client carrying the configured CSRF token
// and session cookie.
func ClientFromConfig(cfg *config.Config) *api.Client {
	if cfg == nil {
		return api.NewDefaultClient("")
	}
	base := cfg.BaseURL
	if base == "" {
		base = api.DefaultBaseURL
	}
	client := api.NewClient(base, cfg.CSRFToken)
	client.SetSession(cfg.SessionID)
	return client
}

func loadClient() (*config.Config, *api.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, ClientFromConfig(cfg), nil
}
