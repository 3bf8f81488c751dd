package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClcHome returns the clc home directory.
// Priority order:
//  1. CLC_HOME environment variable (if set)
//  2. ~/.config/clc
//
// The directory is created if it doesn't exist.
func ClcHome() (string, error) {
	if home := os.Getenv("CLC_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create clc home directory: %w", err)
		}
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	clcHome := filepath.Join(userHome, ".config", "clc")
	if err := os.MkdirAll(clcHome, 0755); err != nil {
		return "", fmt.Errorf("create clc home directory: %w", err)
	}

	return clcHome, nil
}

// DefaultConfigPath returns the path of the user config file inside clc home.
func DefaultConfigPath() (string, error) {
	home, err := ClcHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// DefaultCachePath returns the path of the count cache database inside clc home.
func DefaultCachePath() (string, error) {
	home, err := ClcHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "cache.db"), nil
}
