package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(filepath.Join(tmpDir, "nope", "config.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing config file, got: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.Defaults.JobType != "general" {
		t.Errorf("Expected default job type 'general', got '%s'", cfg.Defaults.JobType)
	}

	if cfg.CriteriaLocation == "" {
		t.Error("Expected a default criteria location")
	}
}

func TestLoadValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	content := `{
  "criteria_location": "/etc/resume-review/criteria.json",
  "log_level": "debug",
  "defaults": {
    "job_type": "software_engineering"
  }
}`

	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvCriteriaLocation, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.CriteriaLocation != "/etc/resume-review/criteria.json" {
		t.Errorf("Unexpected criteria location: %s", cfg.CriteriaLocation)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Unexpected log level: %s", cfg.LogLevel)
	}

	if cfg.Defaults.JobType != "software_engineering" {
		t.Errorf("Unexpected job type: %s", cfg.Defaults.JobType)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(path, []byte(`{"criteria_location": "/from/file.json"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvCriteriaLocation, "/from/env.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.CriteriaLocation != "/from/env.json" {
		t.Errorf("Expected env var to win, got '%s'", cfg.CriteriaLocation)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(path, []byte("{not json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Error("Expected error for malformed config, got nil")
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(path, []byte(`{"log_level": "loud"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Error("Expected validation error for unknown log level, got nil")
	}
}

func TestLoadRejectsUnknownJobType(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(path, []byte(`{"defaults": {"job_type": "astronaut"}}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Error("Expected validation error for unknown job type, got nil")
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.json")

	err := InitConfig(path)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read generated config: %v", err)
	}

	if !strings.Contains(string(data), "criteria_location") {
		t.Error("Expected generated config to contain criteria_location")
	}

	// Generated config should load cleanly.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}

	if cfg.Defaults.JobType != "general" {
		t.Errorf("Expected generated job type 'general', got '%s'", cfg.Defaults.JobType)
	}
}

func TestInitConfigRefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(path, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to write existing config: %v", err)
	}

	err = InitConfig(path)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
