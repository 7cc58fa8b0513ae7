// Package config loads habitual's optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-adjustable settings. All fields have working
// defaults; the config file is optional.
type Config struct {
	DBPath string `yaml:"db_path"` // SQLite database path
	Model  string `yaml:"model"`   // Anthropic model for insights
	APIKey string `yaml:"api_key"` // Anthropic API key (env var preferred)
}

// DefaultPath returns the default config file location,
// ~/.habitual/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".habitual", "config.yaml")
	}
	return filepath.Join(home, ".habitual", "config.yaml")
}

// Load reads the config file at path, applying defaults and env
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Env overrides win over the file.
	if db := os.Getenv("HABITUAL_DB"); db != "" {
		cfg.DBPath = db
	}
	if model := os.Getenv("HABITUAL_MODEL"); model != "" {
		cfg.Model = model
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".habitual", "habitual.db")
	}
	return filepath.Join(home, ".habitual", "habitual.db")
}
