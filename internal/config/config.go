// Package config loads kswitch settings from a YAML file. Command-line flags
// override file values; see internal/cli.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/kswitch/internal/logging"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "KSWITCH_CONFIG"

// Config holds kswitch settings
type Config struct {
	// Kubectl is an explicit kubectl path; skips resolution when set
	Kubectl string `json:"kubectl,omitempty"`
	// KubectlCandidates are tried before the built-in install locations
	KubectlCandidates []string `json:"kubectlCandidates,omitempty"`
	// Kubeconfig is passed to kubectl as --kubeconfig when set
	Kubeconfig string `json:"kubeconfig,omitempty"`
	// Theme is the launcher color theme
	Theme string `json:"theme,omitempty"`
	// Timeout bounds each kubectl call (0 = no timeout)
	Timeout metav1.Duration `json:"timeout,omitempty"`
	// Log configures the log file
	Log LogConfig `json:"log,omitempty"`
}

// LogConfig configures file logging
type LogConfig struct {
	File       string `json:"file,omitempty"`
	Level      string `json:"level,omitempty"`
	Format     string `json:"format,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Theme: "charm",
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns $KSWITCH_CONFIG or <user config dir>/kswitch/config.yaml
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kswitch", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if c.Timeout.Duration < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout.Duration)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// KubectlTimeout returns the per-call kubectl timeout
func (c *Config) KubectlTimeout() time.Duration {
	return c.Timeout.Duration
}

// Logging converts the log section into a logging.Config
func (c *Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
