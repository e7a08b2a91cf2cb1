package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// EnvCriteriaLocation overrides the criteria file location when set.
const EnvCriteriaLocation = "RESUME_REVIEW_CRITERIA"

// Config represents the application configuration.
type Config struct {
	CriteriaLocation string        `json:"criteria_location"`
	LogLevel         string        `json:"log_level,omitempty"`
	Defaults         DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	JobType string `json:"job_type"`
}

// defaultPath returns the standard config file location.
func defaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}

	path = filepath.Join(homeDir, ".resume-review", "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// A missing config file is not an error; defaults are returned so the tool
// works out of the box.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = defaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			cfg.applyDefaults()
			cfg.applyEnvOverrides()
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.CriteriaLocation == "" {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr == nil {
			c.CriteriaLocation = filepath.Join(homeDir, ".resume-review", "resume_scoring_criteria.json")
		}
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Defaults.JobType == "" {
		c.Defaults.JobType = "general"
	}
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if criteriaPath := os.Getenv(EnvCriteriaLocation); criteriaPath != "" {
		c.CriteriaLocation = criteriaPath
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		err = errors.Errorf("unknown log_level in config: %s", c.LogLevel)
		return err
	}

	switch c.Defaults.JobType {
	case "general", "software_engineering":
	default:
		err = errors.Errorf("unknown defaults.job_type in config: %s", c.Defaults.JobType)
		return err
	}

	return err
}

// InitConfig creates a default configuration file. It refuses to overwrite
// an existing one.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = defaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Config{
		CriteriaLocation: filepath.Join(dir, "resume_scoring_criteria.json"),
		LogLevel:         "info",
		Defaults: DefaultConfig{
			JobType: "general",
		},
	}

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
