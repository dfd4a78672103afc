package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".passcheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration. All fields are optional;
// unset fields keep their CLI or built-in defaults.
type File struct {
	// OracleBaseURL overrides the breach oracle endpoint.
	OracleBaseURL string `yaml:"oracle_base_url"`

	// OracleTimeoutSeconds overrides the per-lookup timeout.
	OracleTimeoutSeconds int `yaml:"oracle_timeout_seconds"`

	// AttackRate overrides the assumed attack speed in guesses per second.
	AttackRate float64 `yaml:"attack_rate"`

	// BatchSize overrides the batch concurrency.
	BatchSize int `yaml:"batch_size"`

	// CorpusDir overrides the local breach corpus directory.
	CorpusDir string `yaml:"corpus_dir"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies the file's set fields onto the config. CLI flags are
// applied after this, so the precedence is flags > file > defaults.
func (f *File) Apply(c *Config) {
	if f.OracleBaseURL != "" {
		c.OracleBaseURL = f.OracleBaseURL
	}
	if f.OracleTimeoutSeconds > 0 {
		c.OracleTimeout = time.Duration(f.OracleTimeoutSeconds) * time.Second
	}
	if f.AttackRate > 0 {
		c.AttackRate = f.AttackRate
	}
	if f.BatchSize > 0 {
		c.BatchSize = f.BatchSize
	}
	if f.CorpusDir != "" {
		c.CorpusDir = f.CorpusDir
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .passcheck in the current directory
// 3. Look for .passcheck in the user's home directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
