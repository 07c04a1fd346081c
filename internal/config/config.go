// Package config loads the pagecheck CLI configuration from global and local
// files plus environment variables, and validates it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the pagecheck CLI tool configuration.
type Configuration struct {
	// ContentDir is the directory holding page content documents.
	ContentDir string `koanf:"content_dir" validate:"required"`
	// MinScore is the consistency score below which the audit command fails.
	MinScore int `koanf:"min_score" validate:"min=0,max=100"`
	// Output selects the rendering format for command results.
	Output string `koanf:"output" validate:"omitempty,oneof=text json"`
	// ShowProgress enables spinners during directory audits.
	ShowProgress bool `koanf:"show_progress"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".pagecheck", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables take highest priority.
	k.Load(env.Provider("PAGECHECK_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ContentDir = expandHomePath(cfg.ContentDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: PAGECHECK_MIN_SCORE -> min_score
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PAGECHECK_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
