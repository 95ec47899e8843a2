package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	// Branches lists the branch names (or doublestar glob patterns) to
	// include in the changelog, in report order.
	Branches []string `json:"branches"`

	// OutputPath is the destination file for the rendered changelog.
	OutputPath string `json:"outputPath"`

	// WindowDays is the trailing window: commits older than this many days
	// are excluded.
	WindowDays int `json:"windowDays"`

	// Title is the document title of the rendered changelog.
	Title string `json:"title"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Branches:   []string{"main", "develop"},
		OutputPath: "CHANGELOG.md",
		WindowDays: 30,
		Title:      "Changelog",
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// When path is empty, .changelog.json in the working directory and then in
// the home directory are tried; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".changelog.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".changelog.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".changelog.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
