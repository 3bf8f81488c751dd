// Package config loads optional user configuration for clc. The config file
// can define extra categories that are merged over the builtin table.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c1ph3rc4t/clc/internal/category"
)

// UserCategory is a category definition from the config file
type UserCategory struct {
	// Names holds the primary name first, then any aliases
	Names []string `yaml:"names"`

	// Extensions holds bare extensions, leading dots tolerated
	Extensions []string `yaml:"extensions"`
}

// Config represents clc configuration options
type Config struct {
	// Categories are user-defined categories appended to the builtin table
	Categories []UserCategory `yaml:"categories"`
}

// DefaultConfig returns a Config with no user categories
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for i, uc := range c.Categories {
		if len(uc.Names) == 0 || uc.Names[0] == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		for _, name := range uc.Names {
			if name == "" {
				return fmt.Errorf("category %q has an empty alias", uc.Names[0])
			}
		}
	}
	return nil
}

// CategoryTable returns the builtin table with user categories appended.
// Leading dots on user extensions are stripped so ".proto" and "proto"
// both resolve the same way.
func (c *Config) CategoryTable() []category.Category {
	table := category.Builtin()
	for _, uc := range c.Categories {
		exts := make([]string, 0, len(uc.Extensions))
		for _, ext := range uc.Extensions {
			if len(ext) > 0 && ext[0] == '.' {
				ext = ext[1:]
			}
			exts = append(exts, ext)
		}
		table = append(table, category.Category{Names: uc.Names, Extensions: exts})
	}
	return table
}
