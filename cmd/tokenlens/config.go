package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .tokenlens/config.yaml.
type ProjectConfig struct {
	Version    string `yaml:"version"`
	TokensPath string `yaml:"tokens_path"`
	Theme      string `yaml:"theme"`
}

// loadProjectConfig reads .tokenlens/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".tokenlens/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveTokensPath returns the token file path to use, applying the
// fallback chain:
//  1. Explicit --tokens flag value (non-empty override)
//  2. tokens_path from .tokenlens/config.yaml
//  3. Auto-discovery from the current directory
func resolveTokensPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.TokensPath != "" {
		return cfg.TokensPath
	}
	return ""
}

// resolveThemeName returns the theme to resolve under: flag first, then
// project config, then none.
func resolveThemeName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.Theme != "" {
		return cfg.Theme
	}
	return ""
}
