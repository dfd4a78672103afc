package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.OracleBaseURL != DefaultOracleBaseURL {
		t.Errorf("OracleBaseURL = %q, want %q", cfg.OracleBaseURL, DefaultOracleBaseURL)
	}
	if cfg.OracleTimeout != DefaultOracleTimeout {
		t.Errorf("OracleTimeout = %v, want %v", cfg.OracleTimeout, DefaultOracleTimeout)
	}
	if cfg.AttackRate != DefaultAttackRate {
		t.Errorf("AttackRate = %v, want %v", cfg.AttackRate, DefaultAttackRate)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, DefaultBatchSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.OracleTimeout = 0 },
			want:   ErrInvalidTimeout,
		},
		{
			name:   "negative timeout",
			mutate: func(c *Config) { c.OracleTimeout = -time.Second },
			want:   ErrInvalidTimeout,
		},
		{
			name:   "zero batch size",
			mutate: func(c *Config) { c.BatchSize = 0 },
			want:   ErrInvalidBatchSize,
		},
		{
			name:   "zero attack rate",
			mutate: func(c *Config) { c.AttackRate = 0 },
			want:   ErrInvalidAttackRate,
		},
		{
			name:   "both report formats",
			mutate: func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			want:   ErrConflictingReportFormats,
		},
		{
			name:   "strict without breach check",
			mutate: func(c *Config) { c.Strict = true; c.NoBreachCheck = true },
			want:   ErrConflictingBreachModes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads and applies settings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `
oracle_base_url: https://mirror.example.com
oracle_timeout_seconds: 3
attack_rate: 1e8
batch_size: 4
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)
		if cfg.OracleBaseURL != "https://mirror.example.com" {
			t.Errorf("OracleBaseURL = %q", cfg.OracleBaseURL)
		}
		if cfg.OracleTimeout != 3*time.Second {
			t.Errorf("OracleTimeout = %v, want 3s", cfg.OracleTimeout)
		}
		if cfg.AttackRate != 1e8 {
			t.Errorf("AttackRate = %v, want 1e8", cfg.AttackRate)
		}
		if cfg.BatchSize != 4 {
			t.Errorf("BatchSize = %d, want 4", cfg.BatchSize)
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("batch_size: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		cfg := NewConfig()
		cf.Apply(cfg)
		if cfg.OracleBaseURL != DefaultOracleBaseURL {
			t.Errorf("OracleBaseURL = %q, want default", cfg.OracleBaseURL)
		}
		if cfg.BatchSize != 2 {
			t.Errorf("BatchSize = %d, want 2", cfg.BatchSize)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfigFile() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("batch_size: [broken\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("LoadConfigFile() error = nil, want parse error")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}
