package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", cfg.Categories)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `categories:
  - names: [proto, protobuf]
    extensions: [proto]
  - names: [terraform]
    extensions: [".tf", tfvars]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(cfg.Categories))
	}
	if cfg.Categories[0].Names[0] != "proto" {
		t.Errorf("Categories[0].Names[0] = %q, want proto", cfg.Categories[0].Names[0])
	}
}

// TestLoadConfigMissingFile verifies a missing file yields defaults, not an error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if len(cfg.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", cfg.Categories)
	}
}

// TestLoadConfigMalformedFile verifies malformed YAML is an error
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("categories: [not: {valid"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() error = nil, want parse error")
	}
}

// TestLoadConfigUnnamedCategory verifies a category without names is rejected
func TestLoadConfigUnnamedCategory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `categories:
  - extensions: [proto]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() error = nil, want validation error")
	}
}

func TestCategoryTableMergesUserCategories(t *testing.T) {
	cfg := &Config{
		Categories: []UserCategory{
			{Names: []string{"proto"}, Extensions: []string{".proto"}},
		},
	}

	table := cfg.CategoryTable()

	found := false
	for _, cat := range table {
		if cat.Name() == "proto" {
			found = true
			if len(cat.Extensions) != 1 || cat.Extensions[0] != "proto" {
				t.Errorf("proto extensions = %v, want [proto] with dot stripped", cat.Extensions)
			}
		}
	}
	if !found {
		t.Error("user category proto not in merged table")
	}

	// builtin table still present
	rustFound := false
	for _, cat := range table {
		if cat.Name() == "rust" {
			rustFound = true
		}
	}
	if !rustFound {
		t.Error("builtin rust category missing from merged table")
	}
}

func TestClcHomeEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	custom := filepath.Join(tmpDir, "clc-home")
	t.Setenv("CLC_HOME", custom)

	home, err := ClcHome()
	if err != nil {
		t.Fatalf("ClcHome() error = %v", err)
	}
	if home != custom {
		t.Errorf("ClcHome() = %q, want %q", home, custom)
	}

	info, err := os.Stat(custom)
	if err != nil || !info.IsDir() {
		t.Errorf("ClcHome() did not create directory: %v", err)
	}
}

func TestDefaultPathsUnderHome(t *testing.T) {
	t.Setenv("CLC_HOME", t.TempDir())

	cfgPath, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}
	if filepath.Base(cfgPath) != "config.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want config.yaml basename", cfgPath)
	}

	cachePath, err := DefaultCachePath()
	if err != nil {
		t.Fatalf("DefaultCachePath() error = %v", err)
	}
	if filepath.Base(cachePath) != "cache.db" {
		t.Errorf("DefaultCachePath() = %q, want cache.db basename", cachePath)
	}
}
